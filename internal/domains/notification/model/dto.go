package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateNotificationRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	EntryID     *uuid.UUID `json:"entry_id"`
	Message     string     `json:"message"`
}

func (r CreateNotificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.By(func(value interface{}) error {
				if t, _ := value.(string); !ValidTypes[t] {
					return ErrInvalidType
				}
				return nil
			}),
		),
		validation.Field(&r.Message, validation.Length(0, 500)),
	)
}

// ListNotificationsRequest filters the recipient's notifications.
type ListNotificationsRequest struct {
	Type     string `form:"type"`
	Unread   bool   `form:"unread"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// ========================================
// RESPONSE DTOs
// ========================================

type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	ActorID     uuid.UUID  `json:"actor_id"`
	Actor       string     `json:"actor"`
	Type        string     `json:"type"`
	EntryID     *uuid.UUID `json:"entry_id,omitempty"`
	Message     string     `json:"message"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}
