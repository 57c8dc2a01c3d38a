package clients

import (
	"context"
	"log"
	"net/http"
	"time"

	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase/interfaces"
)

const projectNotificationsPath = "/api/notifications/project"

type NotificationClient struct {
	client serviceClient
}

var _ interfaces.INotificationClient = (*NotificationClient)(nil)

func NewNotificationClient(baseURL string, timeout time.Duration) *NotificationClient {
	return &NotificationClient{client: newServiceClient(baseURL, timeout)}
}

func (c *NotificationClient) SendNotification(ctx context.Context, n entities.Notification) error {
	log.Printf("[notification][client] send user_id=%s type=%s reference_id=%s", n.UserID, n.Kind, n.ReferenceID)
	return c.client.do(ctx, http.MethodPost, projectNotificationsPath, nil, n)
}
