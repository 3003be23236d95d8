package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"corkboard.app/api/internal/http/handler"
	"corkboard.app/api/internal/http/router"
	"corkboard.app/api/internal/model"
	"corkboard.app/api/internal/service"
)

var _ = Describe("ListHandler card routes", func() {
	var (
		engine  *gin.Engine
		cardSvc *mockCardService
	)

	BeforeEach(func() {
		engine = authedRouter(&model.User{ID: 1})
		cardSvc = &mockCardService{}
		h := handler.NewListHandler(cardSvc)
		router.ListRouter(engine.Group("/api/lists"), h)
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	It("creates a card with a description", func() {
		cardSvc.createFn = func(_ context.Context, userID, listID int64, name string, description *string, position int) (*model.Card, error) {
			Expect(listID).To(Equal(int64(700)))
			Expect(name).To(Equal("fix login"))
			Expect(*description).To(Equal("500 on empty password"))
			return &model.Card{ID: 7000, Name: name, Description: description, ListID: listID}, nil
		}

		w := do(http.MethodPost, "/api/lists/700/cards", map[string]any{
			"name":        "fix login",
			"description": "500 on empty password",
		})

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("7000"))
		Expect(resp["list_id"]).To(Equal("700"))
	})

	It("forwards only the provided fields on a partial update", func() {
		cardSvc.updateFn = func(_ context.Context, _, listID, cardID int64, update service.CardUpdate) (*model.Card, error) {
			Expect(listID).To(Equal(int64(700)))
			Expect(cardID).To(Equal(int64(7000)))
			Expect(update.Name).To(BeNil())
			Expect(update.DescriptionSet).To(BeFalse())
			Expect(*update.Position).To(Equal(4))
			Expect(*update.ListID).To(Equal(int64(701)))
			return &model.Card{ID: 7000, Position: 4, ListID: 701}, nil
		}

		w := do(http.MethodPatch, "/api/lists/700/cards/7000", map[string]any{
			"position": 4,
			"list_id":  "701",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("clears the description on an explicit null", func() {
		cardSvc.updateFn = func(_ context.Context, _, _, _ int64, update service.CardUpdate) (*model.Card, error) {
			Expect(update.DescriptionSet).To(BeTrue())
			Expect(update.Description).To(BeNil())
			return &model.Card{ID: 7000}, nil
		}

		w := do(http.MethodPatch, "/api/lists/700/cards/7000", json.RawMessage(`{"description":null}`))

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("maps a cross-chain move rejection to 404", func() {
		cardSvc.updateFn = func(_ context.Context, _, _, _ int64, _ service.CardUpdate) (*model.Card, error) {
			return nil, service.ErrNotFound
		}

		w := do(http.MethodPatch, "/api/lists/700/cards/7000", map[string]any{"list_id": "800"})

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("deletes a card and returns 204", func() {
		called := false
		cardSvc.deleteFn = func(_ context.Context, _, listID, cardID int64) error {
			Expect(listID).To(Equal(int64(700)))
			Expect(cardID).To(Equal(int64(7000)))
			called = true
			return nil
		}

		w := do(http.MethodDelete, "/api/lists/700/cards/7000", nil)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(called).To(BeTrue())
	})

	It("lists the cards of a list", func() {
		cardSvc.listByListFn = func(_ context.Context, _, listID int64) ([]model.Card, error) {
			return []model.Card{{ID: 7000, ListID: listID}, {ID: 7001, ListID: listID}}, nil
		}

		w := do(http.MethodGet, "/api/lists/700/cards", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
	})
})
