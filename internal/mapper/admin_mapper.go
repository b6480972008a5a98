package mapper

import (
	"encoding/json"

	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/model"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) SystemLogToEntity(l *model.SystemLog) *entity.SystemLog {
	if l == nil {
		return nil
	}
	var details map[string]interface{}
	if len(l.Details) > 0 {
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.SystemLog{
		Id:        l.Id,
		Level:     l.Level,
		Module:    l.Module,
		Message:   l.Message,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AdminMapper) SystemLogToModel(l *entity.SystemLog) *model.SystemLog {
	if l == nil {
		return nil
	}
	out := &model.SystemLog{
		Id:        l.Id,
		Level:     l.Level,
		Module:    l.Module,
		Message:   l.Message,
		CreatedAt: l.CreatedAt,
	}
	if l.Details != nil {
		if raw, err := json.Marshal(l.Details); err == nil {
			out.Details = raw
		}
	}
	return out
}

func (m *AdminMapper) UsageStatToEntity(s *model.UsageStat) *entity.UsageStat {
	if s == nil {
		return nil
	}
	return &entity.UsageStat{
		Id:       s.Id,
		UserId:   s.UserId,
		Day:      s.Day,
		Messages: s.Messages,
		Blocked:  s.Blocked,
	}
}
