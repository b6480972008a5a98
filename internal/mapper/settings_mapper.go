package mapper

import (
	"hr-chatbot-be/internal/entity"
	"hr-chatbot-be/internal/model"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ExcludedTermToEntity(t *model.ExcludedTerm) *entity.ExcludedTerm {
	if t == nil {
		return nil
	}
	return &entity.ExcludedTerm{
		Id:        t.Id,
		UserId:    t.UserId,
		Term:      t.Term,
		CreatedAt: t.CreatedAt,
	}
}

func (m *SettingsMapper) ExcludedTermToModel(t *entity.ExcludedTerm) *model.ExcludedTerm {
	if t == nil {
		return nil
	}
	return &model.ExcludedTerm{
		Id:        t.Id,
		UserId:    t.UserId,
		Term:      t.Term,
		CreatedAt: t.CreatedAt,
	}
}

func (m *SettingsMapper) PromptContextToEntity(c *model.PromptContext) *entity.PromptContext {
	if c == nil {
		return nil
	}
	return &entity.PromptContext{
		Id:           c.Id,
		Name:         c.Name,
		SystemPrompt: c.SystemPrompt,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *SettingsMapper) PromptContextToModel(c *entity.PromptContext) *model.PromptContext {
	if c == nil {
		return nil
	}
	return &model.PromptContext{
		Id:           c.Id,
		Name:         c.Name,
		SystemPrompt: c.SystemPrompt,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}
