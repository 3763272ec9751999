package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/kubev2v/clause-builder/api/v1"
	"github.com/kubev2v/clause-builder/internal/handlers"
	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
)

var _ = Describe("Clause Handler", func() {
	var (
		mockClauses *MockClauseService
		router      *gin.Engine
		id          uuid.UUID
	)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces/"+id.String()+"/clause", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		id = uuid.New()
		mockClauses = &MockClauseService{Result: "SELECT * FROM users WHERE id IN (1, 2);"}
		handler := handlers.New(&MockWorkspaceService{}, mockClauses, 5, 1024)
		router = gin.New()
		handler.RegisterRoutes(router.Group("/api/v1"))
	})

	// Given a column, operator and base query
	// When we request a clause
	// Then the service receives them and the SQL is returned
	It("should return the generated sql", func() {
		w := post(`{"column":"id","operator":"IN","baseQuery":"SELECT * FROM users"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		var response v1.ClauseResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Sql).To(Equal("SELECT * FROM users WHERE id IN (1, 2);"))
		Expect(mockClauses.LastID).To(Equal(id))
		Expect(mockClauses.LastParams.Column).To(Equal("id"))
		Expect(mockClauses.LastParams.Operator).To(Equal("IN"))
		Expect(mockClauses.LastParams.BaseQuery).To(Equal("SELECT * FROM users"))
	})

	It("should pass empty operator and base query when omitted", func() {
		w := post(`{"column":"id"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(mockClauses.LastParams.Operator).To(BeEmpty())
		Expect(mockClauses.LastParams.BaseQuery).To(BeEmpty())
	})

	DescribeTable("should map errors to status codes",
		func(err error, status int) {
			mockClauses.Error = err

			w := post(`{"column":"id"}`)

			Expect(w.Code).To(Equal(status))
		},
		Entry("unknown column", srvErrors.NewNoColumnSelectedError("email"), http.StatusBadRequest),
		Entry("empty column", srvErrors.NewEmptyColumnValuesError("id"), http.StatusBadRequest),
		Entry("unsupported operator", srvErrors.NewUnsupportedOperatorError("BETWEEN"), http.StatusBadRequest),
		Entry("no table", srvErrors.NewNoTableLoadedError(), http.StatusBadRequest),
		Entry("unknown workspace", srvErrors.NewWorkspaceNotFoundError("x"), http.StatusNotFound),
		Entry("unexpected failure", errors.New("disk full"), http.StatusInternalServerError),
	)

	It("should return 400 for a malformed workspace id", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces/not-a-uuid/clause", bytes.NewBufferString(`{"column":"id"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("invalid workspace id"))
		Expect(mockClauses.CallCount).To(BeZero())
	})

	It("should return 400 for invalid JSON", func() {
		w := post("{")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(mockClauses.CallCount).To(BeZero())
	})
})
