package constants

// NSQ topics and channels
const (
	// Published by the intake API when a stored lead could not be emailed
	TopicLeadNotificationFailed = "lead.notification.failed"

	ChannelNotifier = "notifier"
)
