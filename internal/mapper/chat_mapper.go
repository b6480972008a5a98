package mapper

import (
	"encoding/json"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Name:      s.Name,
		State:     s.State,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Name:      s.Name,
		State:     s.State,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}

// Message mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var metadata *entity.MessageMetadata
	if len(msg.Metadata) > 0 {
		var decoded entity.MessageMetadata
		// Malformed metadata is treated as absent, mirroring the extractor.
		if err := json.Unmarshal(msg.Metadata, &decoded); err == nil && decoded.Kind != "" {
			metadata = &decoded
		}
	}

	return &entity.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    msg.Sender,
		Content:   msg.Content,
		Metadata:  metadata,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	out := &model.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    msg.Sender,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
	if msg.Metadata != nil {
		if raw, err := json.Marshal(msg.Metadata); err == nil {
			out.Metadata = raw
		}
	}
	return out
}

// Blocked question mappers

func (m *ChatMapper) BlockedQuestionToEntity(b *model.BlockedQuestion) *entity.BlockedQuestion {
	if b == nil {
		return nil
	}
	return &entity.BlockedQuestion{
		Id:        b.Id,
		SessionId: b.SessionId,
		Question:  b.Question,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

func (m *ChatMapper) BlockedQuestionToModel(b *entity.BlockedQuestion) *model.BlockedQuestion {
	if b == nil {
		return nil
	}
	return &model.BlockedQuestion{
		Id:        b.Id,
		SessionId: b.SessionId,
		Question:  b.Question,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// Snapshot mappers

func (m *ChatMapper) SnapshotToEntity(s *model.MessageSnapshot) *entity.ResultSnapshot {
	if s == nil {
		return nil
	}

	var rows []map[string]interface{}
	if len(s.Rows) > 0 {
		_ = json.Unmarshal(s.Rows, &rows)
	}

	return &entity.ResultSnapshot{
		Id:        s.Id,
		MessageId: s.MessageId,
		Rows:      rows,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) SnapshotToModel(s *entity.ResultSnapshot) *model.MessageSnapshot {
	if s == nil {
		return nil
	}

	raw, err := json.Marshal(s.Rows)
	if err != nil {
		raw = []byte("[]")
	}

	return &model.MessageSnapshot{
		Id:        s.Id,
		MessageId: s.MessageId,
		Rows:      raw,
		CreatedAt: s.CreatedAt,
	}
}
