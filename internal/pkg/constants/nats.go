package constants

// NATS subjects carried on the broadcast fabric
const (
	SubjectLocationUpdate    = "tracking.location.update"
	SubjectTripStatus        = "tracking.trip.status"
	SubjectTripETA           = "tracking.trip.eta"
	SubjectTripProximity     = "tracking.trip.proximity"
	SubjectSafetyCheck       = "tracking.safety.check"
	SubjectSOSAlert          = "tracking.sos.alert"
	SubjectSOSUpdate         = "tracking.sos.update"
	SubjectSupportEscalation = "tracking.support.escalation"
	SubjectTrackingEnded     = "tracking.trip.ended"
)

// NSQ topics for out-of-band notification jobs
const (
	TopicPushNotification = "notification.push"
	TopicSMSNotification  = "notification.sms"
)

// NSQ channel used by the notification dispatch worker
const ChannelNotificationWorker = "tracking-service"
