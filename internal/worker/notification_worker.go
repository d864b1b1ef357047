package worker

import (
	"github.com/spec-kit/portfolio-api/internal/service"
)

// StartNotificationWorker hooks the notification service into the event
// dispatcher at startup, so contact submissions and logins get handled
// in-process. Dispatch is synchronous; there is no queue to drain.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
