package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
)

type mockTemplateDAO struct {
	templates []model.Template
}

func (m *mockTemplateDAO) GetAll(ctx context.Context) ([]model.Template, error) {
	return m.templates, nil
}

func (m *mockTemplateDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.Template, error) {
	for i := range m.templates {
		if m.templates[i].TemplateID == id {
			t := m.templates[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *mockTemplateDAO) GetByName(ctx context.Context, name string) (*model.Template, error) {
	for i := range m.templates {
		if m.templates[i].TemplateName == name {
			t := m.templates[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *mockTemplateDAO) Create(ctx context.Context, t *model.Template) error {
	t.TemplateID = uuid.New()
	m.templates = append(m.templates, *t)
	return nil
}

func (m *mockTemplateDAO) Update(ctx context.Context, id uuid.UUID, update repository.TemplateUpdate) (*model.Template, error) {
	for i := range m.templates {
		if m.templates[i].TemplateID == id {
			if update.TemplateName != nil {
				m.templates[i].TemplateName = *update.TemplateName
			}
			if update.IsActive != nil {
				m.templates[i].IsActive = *update.IsActive
			}
			t := m.templates[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *mockTemplateDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range m.templates {
		if m.templates[i].TemplateID == id {
			m.templates = append(m.templates[:i], m.templates[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type mockSectionDAO struct {
	sections []model.TemplateSection
}

func (m *mockSectionDAO) GetAll(ctx context.Context) ([]model.TemplateSection, error) {
	return m.sections, nil
}

func (m *mockSectionDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.TemplateSection, error) {
	for i := range m.sections {
		if m.sections[i].SectionID == id {
			s := m.sections[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockSectionDAO) GetByName(ctx context.Context, name string) (*model.TemplateSection, error) {
	for i := range m.sections {
		if m.sections[i].SectionName == name {
			s := m.sections[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockSectionDAO) Create(ctx context.Context, s *model.TemplateSection) error {
	s.SectionID = uuid.New()
	m.sections = append(m.sections, *s)
	return nil
}

func (m *mockSectionDAO) Update(ctx context.Context, id uuid.UUID, update repository.SectionUpdate) (*model.TemplateSection, error) {
	for i := range m.sections {
		if m.sections[i].SectionID == id {
			if update.SectionName != nil {
				m.sections[i].SectionName = *update.SectionName
			}
			if update.SectionContentTemplate != nil {
				m.sections[i].SectionContentTemplate = *update.SectionContentTemplate
			}
			s := m.sections[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockSectionDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range m.sections {
		if m.sections[i].SectionID == id {
			m.sections = append(m.sections[:i], m.sections[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type mockCompositionDAO struct {
	compositions []model.SectionComposition
}

func (m *mockCompositionDAO) GetAll(ctx context.Context) ([]model.SectionComposition, error) {
	return m.compositions, nil
}

func (m *mockCompositionDAO) GetByIDs(ctx context.Context, templateID, sectionID uuid.UUID) (*model.SectionComposition, error) {
	for i := range m.compositions {
		if m.compositions[i].TemplateID == templateID && m.compositions[i].SectionID == sectionID {
			c := m.compositions[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockCompositionDAO) GetByTemplateID(ctx context.Context, templateID uuid.UUID) ([]model.SectionComposition, error) {
	var out []model.SectionComposition
	for _, c := range m.compositions {
		if c.TemplateID == templateID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (m *mockCompositionDAO) Create(ctx context.Context, c *model.SectionComposition) error {
	m.compositions = append(m.compositions, *c)
	return nil
}

func (m *mockCompositionDAO) Update(ctx context.Context, templateID, sectionID uuid.UUID, update repository.CompositionUpdate) (*model.SectionComposition, error) {
	for i := range m.compositions {
		if m.compositions[i].TemplateID == templateID && m.compositions[i].SectionID == sectionID {
			if update.OrderIndex != nil {
				m.compositions[i].OrderIndex = *update.OrderIndex
			}
			if update.IsMandatory != nil {
				m.compositions[i].IsMandatory = *update.IsMandatory
			}
			c := m.compositions[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockCompositionDAO) Delete(ctx context.Context, templateID, sectionID uuid.UUID) (bool, error) {
	for i := range m.compositions {
		if m.compositions[i].TemplateID == templateID && m.compositions[i].SectionID == sectionID {
			m.compositions = append(m.compositions[:i], m.compositions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type mockDocumentDAO struct {
	documents []model.Document
}

func (m *mockDocumentDAO) GetAll(ctx context.Context) ([]model.Document, error) {
	return m.documents, nil
}

func (m *mockDocumentDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	for i := range m.documents {
		if m.documents[i].DocumentID == id {
			d := m.documents[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (m *mockDocumentDAO) Create(ctx context.Context, d *model.Document) error {
	d.DocumentID = uuid.New()
	m.documents = append(m.documents, *d)
	return nil
}

func (m *mockDocumentDAO) Update(ctx context.Context, id uuid.UUID, update repository.DocumentUpdate) (*model.Document, error) {
	for i := range m.documents {
		if m.documents[i].DocumentID == id {
			if update.DocumentName != nil {
				m.documents[i].DocumentName = *update.DocumentName
			}
			if update.TextContent != nil {
				m.documents[i].TextContent = *update.TextContent
			}
			if update.DynamicData != nil {
				m.documents[i].DynamicData = update.DynamicData
			}
			d := m.documents[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (m *mockDocumentDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range m.documents {
		if m.documents[i].DocumentID == id {
			m.documents = append(m.documents[:i], m.documents[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type mockDocumentTypeDAO struct {
	types []model.DocumentType
}

func (m *mockDocumentTypeDAO) GetAll(ctx context.Context) ([]model.DocumentType, error) {
	return m.types, nil
}

func (m *mockDocumentTypeDAO) GetByID(ctx context.Context, id uuid.UUID) (*model.DocumentType, error) {
	for i := range m.types {
		if m.types[i].DocumentTypeID == id {
			dt := m.types[i]
			return &dt, nil
		}
	}
	return nil, nil
}

func (m *mockDocumentTypeDAO) GetByName(ctx context.Context, name string) (*model.DocumentType, error) {
	for i := range m.types {
		if m.types[i].TypeName == name {
			dt := m.types[i]
			return &dt, nil
		}
	}
	return nil, nil
}

func (m *mockDocumentTypeDAO) Create(ctx context.Context, dt *model.DocumentType) error {
	dt.DocumentTypeID = uuid.New()
	m.types = append(m.types, *dt)
	return nil
}

func (m *mockDocumentTypeDAO) Update(ctx context.Context, id uuid.UUID, update repository.DocumentTypeUpdate) (*model.DocumentType, error) {
	for i := range m.types {
		if m.types[i].DocumentTypeID == id {
			if update.TypeName != nil {
				m.types[i].TypeName = *update.TypeName
			}
			if update.Description != nil {
				m.types[i].Description = *update.Description
			}
			dt := m.types[i]
			return &dt, nil
		}
	}
	return nil, nil
}

func (m *mockDocumentTypeDAO) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range m.types {
		if m.types[i].DocumentTypeID == id {
			m.types = append(m.types[:i], m.types[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
