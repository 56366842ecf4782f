package handler_test

import (
	"net/http"
	"testing"

	"crm-web-server/internal/handler"
	"crm-web-server/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func leadRouter(svc *MockLeadService) chi.Router {
	h := handler.NewLeadHandler(svc, 1<<20)
	r := chi.NewRouter()
	r.Route("/api/leads", func(r chi.Router) {
		r.Post("/", h.SubmitLead)
		r.Get("/", h.ListLeads)
		r.Get("/{id}", h.GetLead)
		r.Put("/{id}/status", h.UpdateStatus)
		r.Delete("/{id}", h.DeleteLead)
		r.Post("/{id}/documents", h.UploadDocument)
		r.Post("/{id}/convert", h.ConvertLead)
	})
	return r
}

func TestLeadHandler_Submit(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("Submit", mock.Anything, mock.MatchedBy(func(l *model.Lead) bool {
		details, ok := l.Details.(*model.AgroDetails)
		return ok && l.Source == model.LeadSourceAgro && details.Crop == "soja" && *details.PropertySize == 120
	})).Return(&model.Lead{ID: "lead-1", Source: model.LeadSourceAgro}, nil)

	router := leadRouter(svc)

	rec, env := serve(t, router, jsonRequest(t, http.MethodPost, "/api/leads", `{
		"source": "agro",
		"name": "José Pereira",
		"details": {"propertySize": 120, "crop": "soja"}
	}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"id":"lead-1"`)
}

func TestLeadHandler_Submit_Rejects(t *testing.T) {
	svc := new(MockLeadService)
	router := leadRouter(svc)

	cases := map[string]string{
		"unknown source":        `{"source": "outro", "name": "José"}`,
		"details of other form": `{"source": "agro", "name": "José", "details": {"companyName": "ACME"}}`,
		"no name":               `{"source": "geral"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec, env := serve(t, router, jsonRequest(t, http.MethodPost, "/api/leads", body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "invalid request", env.Error)
		})
	}
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestLeadHandler_ListAndStatus(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("List", mock.Anything, model.LeadFilter{Source: model.LeadSourceCredito, Status: model.LeadStatusNew}, 1, 20).
		Return([]*model.Lead{{ID: "lead-1"}}, nil)
	svc.On("UpdateStatus", mock.Anything, "lead-1", model.LeadStatusContacted).Return(nil)

	router := leadRouter(svc)

	rec, _ := serve(t, router, jsonRequest(t, http.MethodGet, "/api/leads?source=credito&status=new", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, router, jsonRequest(t, http.MethodPut, "/api/leads/lead-1/status", map[string]string{"status": "contacted"}))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = serve(t, router, jsonRequest(t, http.MethodPut, "/api/leads/lead-1/status", map[string]string{"status": "converted"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandler_Convert(t *testing.T) {
	svc := new(MockLeadService)
	svc.On("Convert", mock.Anything, model.AuthContext{UserUUID: "user-1"}, "lead-1").
		Return(&model.Customer{ID: "c9"}, nil)
	svc.On("Convert", mock.Anything, model.AuthContext{UserUUID: "user-1"}, "lead-2").
		Return(nil, model.ErrInvalidInput)

	router := leadRouter(svc)

	rec, env := serve(t, router, asUser(jsonRequest(t, http.MethodPost, "/api/leads/lead-1/convert", nil), "user-1"))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"id":"c9"`)

	rec, _ = serve(t, router, asUser(jsonRequest(t, http.MethodPost, "/api/leads/lead-2/convert", nil), "user-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
