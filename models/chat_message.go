package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// ChatMessage is a direct message between two users. It is plain CRUD data;
// delivery is the client's concern.
type ChatMessage struct {
	ID          uint   `gorm:"primarykey"`
	MessageText string `gorm:"not null"`

	MessageDate time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time

	SenderUserID   uint
	ReceiverUserID uint

	Sender   *User `gorm:"foreignKey:SenderUserID"`
	Receiver *User `gorm:"foreignKey:ReceiverUserID"`
}

// EntityName keeps the source's underscored spelling, which the wire bodies
// ("Chat_Message Record not found") depend on. Validation messages use the
// spaced form, also verbatim from the source.
func (m *ChatMessage) EntityName() string { return "Chat_Message" }

func (m *ChatMessage) PrimaryID() uint { return m.ID }

func (m *ChatMessage) ConstructorFields() []string {
	return []string{"message_text", "sender_user_id", "receiver_user_id"}
}

func (m *ChatMessage) PatchableFields() []string {
	return []string{"message_text", "sender_user_id", "receiver_user_id"}
}

func (m *ChatMessage) ApplyField(tx *gorm.DB, name string, raw json.RawMessage) error {
	switch name {
	case "message_text":
		value, err := decodeString("Chat_Message", name, raw)
		if err != nil {
			return err
		}
		if value == "" {
			return newValidationError(KindMissingField, name, "Chat Message must have Message Text")
		}
		if err := requireMaxLen(name, value, "Chat Message Message Text must be less than or equal to 250 characters long."); err != nil {
			return err
		}
		m.MessageText = value
	case "sender_user_id":
		id, err := decodeInt("Chat_Message", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return newValidationError(KindMissingField, name, "Chat Message must have a Sending User")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "Chat Message Sending User must exist.")
		}
		if err := requireExists(tx, &User{}, uint(id), name, "Chat Message Sending User must exist."); err != nil {
			return err
		}
		m.SenderUserID = uint(id)
	case "receiver_user_id":
		id, err := decodeInt("Chat_Message", name, raw)
		if err != nil {
			return err
		}
		if id == 0 {
			return newValidationError(KindMissingField, name, "Chat Message must have a Receiving User")
		}
		if id < 0 {
			return newValidationError(KindInvalidReference, name, "Chat Message Receiving User must exist.")
		}
		if err := requireExists(tx, &User{}, uint(id), name, "Chat Message Receiving User must exist."); err != nil {
			return err
		}
		m.ReceiverUserID = uint(id)
	}
	return nil
}
