package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/model"
)

func TestCreateDocument_AssemblesFromTemplate(t *testing.T) {
	templateID := uuid.New()
	headerID := uuid.New()
	bodyID := uuid.New()

	templates := &mockTemplateDAO{templates: []model.Template{
		{TemplateID: templateID, TemplateName: "deed", IsActive: true},
	}}
	sections := &mockSectionDAO{sections: []model.TemplateSection{
		{SectionID: headerID, SectionName: "header", SectionContentTemplate: "Deed for {{client_name}}"},
		{SectionID: bodyID, SectionName: "body", SectionContentTemplate: "Signed on {{date}}."},
	}}
	compositions := &mockCompositionDAO{compositions: []model.SectionComposition{
		{TemplateID: templateID, SectionID: bodyID, OrderIndex: 1},
		{TemplateID: templateID, SectionID: headerID, OrderIndex: 0},
	}}
	documents := &mockDocumentDAO{}
	svc := NewDocumentService(documents, templates, sections, compositions, &mockDocumentTypeDAO{})

	resp, err := svc.CreateDocument(context.Background(), &dto.CreateDocumentRequest{
		DocumentName: "Deed 42",
		TemplateID:   templateID.String(),
		DynamicData: map[string]any{
			"client_name": "Ada",
			"date":        "2026-08-23",
		},
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "Deed for Ada\nSigned on 2026-08-23.", resp.TextContent,
		"sections must render in order_index order")
}

func TestUpdateDocument_DynamicDataRerenders(t *testing.T) {
	templateID := uuid.New()
	headerID := uuid.New()

	templates := &mockTemplateDAO{templates: []model.Template{
		{TemplateID: templateID, TemplateName: "deed", IsActive: true},
	}}
	sections := &mockSectionDAO{sections: []model.TemplateSection{
		{SectionID: headerID, SectionName: "header", SectionContentTemplate: "Deed for {{client_name}}"},
	}}
	compositions := &mockCompositionDAO{compositions: []model.SectionComposition{
		{TemplateID: templateID, SectionID: headerID, OrderIndex: 0},
	}}
	documents := &mockDocumentDAO{}
	svc := NewDocumentService(documents, templates, sections, compositions, &mockDocumentTypeDAO{})

	created, err := svc.CreateDocument(context.Background(), &dto.CreateDocumentRequest{
		DocumentName: "Deed 42",
		TemplateID:   templateID.String(),
		DynamicData:  map[string]any{"client_name": "Ada"},
	}, uuid.New())
	require.NoError(t, err)
	require.Equal(t, "Deed for Ada", created.TextContent)

	id, err := uuid.Parse(created.DocumentID)
	require.NoError(t, err)

	updated, err := svc.UpdateDocument(context.Background(), id, &dto.UpdateDocumentRequest{
		DynamicData: map[string]any{"client_name": "Grace"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Deed for Grace", updated.TextContent,
		"new dynamic_data must re-render the templated text")
}

func TestUpdateDocument_ExplicitTextSkipsRerender(t *testing.T) {
	templateID := uuid.New()
	documents := &mockDocumentDAO{documents: []model.Document{
		{DocumentID: uuid.New(), DocumentName: "Deed 42", TemplateID: &templateID, TextContent: "Deed for Ada"},
	}}
	svc := NewDocumentService(documents, &mockTemplateDAO{}, &mockSectionDAO{}, &mockCompositionDAO{}, &mockDocumentTypeDAO{})

	manual := "hand-edited text"
	updated, err := svc.UpdateDocument(context.Background(), documents.documents[0].DocumentID, &dto.UpdateDocumentRequest{
		TextContent: &manual,
		DynamicData: map[string]any{"client_name": "Grace"},
	})
	require.NoError(t, err)

	assert.Equal(t, manual, updated.TextContent,
		"caller-supplied text wins over re-rendering")
}

func TestUpdateDocument_FreeTextIgnoresDynamicData(t *testing.T) {
	documents := &mockDocumentDAO{documents: []model.Document{
		{DocumentID: uuid.New(), DocumentName: "Handwritten", TextContent: "dictated verbatim"},
	}}
	svc := NewDocumentService(documents, &mockTemplateDAO{}, &mockSectionDAO{}, &mockCompositionDAO{}, &mockDocumentTypeDAO{})

	updated, err := svc.UpdateDocument(context.Background(), documents.documents[0].DocumentID, &dto.UpdateDocumentRequest{
		DynamicData: map[string]any{"client_name": "Grace"},
	})
	require.NoError(t, err)

	assert.Equal(t, "dictated verbatim", updated.TextContent,
		"documents without a template have nothing to re-render")
}

func TestCreateDocument_InactiveTemplateRejected(t *testing.T) {
	templateID := uuid.New()
	templates := &mockTemplateDAO{templates: []model.Template{
		{TemplateID: templateID, TemplateName: "deed", IsActive: false},
	}}
	svc := NewDocumentService(&mockDocumentDAO{}, templates, &mockSectionDAO{}, &mockCompositionDAO{}, &mockDocumentTypeDAO{})

	_, err := svc.CreateDocument(context.Background(), &dto.CreateDocumentRequest{
		DocumentName: "Deed 42",
		TemplateID:   templateID.String(),
	}, uuid.New())
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.KindValidation, apiErr.Kind)
}

func TestCreateDocument_FreeTextWithoutTemplate(t *testing.T) {
	documents := &mockDocumentDAO{}
	svc := NewDocumentService(documents, &mockTemplateDAO{}, &mockSectionDAO{}, &mockCompositionDAO{}, &mockDocumentTypeDAO{})

	creator := uuid.New()
	resp, err := svc.CreateDocument(context.Background(), &dto.CreateDocumentRequest{
		DocumentName: "Handwritten",
		TextContent:  "dictated verbatim",
	}, creator)
	require.NoError(t, err)

	assert.Equal(t, "dictated verbatim", resp.TextContent)
	require.Len(t, documents.documents, 1)
	require.NotNil(t, documents.documents[0].CreatedBy)
	assert.Equal(t, creator, *documents.documents[0].CreatedBy)
}

func TestCreateDocument_UnknownDocumentType(t *testing.T) {
	svc := NewDocumentService(&mockDocumentDAO{}, &mockTemplateDAO{}, &mockSectionDAO{}, &mockCompositionDAO{}, &mockDocumentTypeDAO{})

	_, err := svc.CreateDocument(context.Background(), &dto.CreateDocumentRequest{
		DocumentName:   "Deed 42",
		DocumentTypeID: uuid.New().String(),
	}, uuid.New())
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.KindValidation, apiErr.Kind)
}

func TestGetDocument_NotFound(t *testing.T) {
	svc := NewDocumentService(&mockDocumentDAO{}, &mockTemplateDAO{}, &mockSectionDAO{}, &mockCompositionDAO{}, &mockDocumentTypeDAO{})

	_, err := svc.GetDocument(context.Background(), uuid.New())
	require.Error(t, err)

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.KindNotFound, apiErr.Kind)
}
