package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

type stubCompanyService struct {
	services.CompanyService
	deleteErr error
}

func (s *stubCompanyService) CreateCompany(_ context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	return &models.Company{ID: uuid.New(), Name: req.Name}, nil
}

func (s *stubCompanyService) DeleteCompany(_ context.Context, _ uuid.UUID) error {
	return s.deleteErr
}

func TestUUIDParamRejectsGarbage(t *testing.T) {
	r := gin.New()
	r.GET("/companies/:id", NewCompanyController(&stubCompanyService{}).GetCompany)

	w, resp := doJSON(r, http.MethodGet, "/companies/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest || resp.Error == nil || resp.Error.Field != "id" || resp.Error.Code != dto.ErrorCodeBadRequest {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCompanyValidation(t *testing.T) {
	r := gin.New()
	r.POST("/companies", NewCompanyController(&stubCompanyService{}).CreateCompany)

	valid := map[string]string{
		"name":          "Acme Corp",
		"description":   "Software",
		"industry":      "IT",
		"website":       "https://acme.example",
		"contactPerson": "Jane Doe",
		"contactEmail":  "hr@acme.example",
	}
	if w, resp := doJSON(r, http.MethodPost, "/companies", valid); w.Code != http.StatusCreated || !resp.Success {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	invalid := map[string]string{}
	for k, v := range valid {
		invalid[k] = v
	}
	invalid["website"] = "not a url"
	w, resp := doJSON(r, http.MethodPost, "/companies", invalid)
	if w.Code != http.StatusUnprocessableEntity || resp.Error == nil || resp.Error.Field != "website" {
		t.Fatalf("expected 422 on website, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteReferencedCompany(t *testing.T) {
	r := gin.New()
	r.DELETE("/companies/:id", NewCompanyController(&stubCompanyService{deleteErr: apperrors.ErrStillReferenced}).DeleteCompany)

	w, resp := doJSON(r, http.MethodDelete, "/companies/"+uuid.NewString(), nil)
	if w.Code != http.StatusConflict || resp.Error.Message != "resource is still referenced by other records" {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}
