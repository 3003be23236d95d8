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

var _ = Describe("BoardHandler list routes", func() {
	var (
		engine  *gin.Engine
		listSvc *mockListService
	)

	BeforeEach(func() {
		engine = authedRouter(&model.User{ID: 1})
		listSvc = &mockListService{}
		h := handler.NewBoardHandler(listSvc)
		router.BoardRouter(engine.Group("/api/boards"), h)
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

	It("creates a list on a board", func() {
		listSvc.createFn = func(_ context.Context, userID, boardID int64, name string, position int) (*model.List, error) {
			Expect(userID).To(Equal(int64(1)))
			Expect(boardID).To(Equal(int64(70)))
			Expect(name).To(Equal("in progress"))
			Expect(position).To(Equal(1))
			return &model.List{ID: 700, Name: name, BoardID: boardID, Position: position}, nil
		}

		w := do(http.MethodPost, "/api/boards/70/lists", map[string]any{"name": "in progress", "position": 1})

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("700"))
		Expect(resp["board_id"]).To(Equal("70"))
	})

	It("rejects a list creation without a name", func() {
		w := do(http.MethodPost, "/api/boards/70/lists", map[string]any{"position": 1})

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("renames a list without touching its position", func() {
		listSvc.updateFn = func(_ context.Context, _, boardID, listID int64, update service.ListUpdate) (*model.List, error) {
			Expect(boardID).To(Equal(int64(70)))
			Expect(listID).To(Equal(int64(700)))
			Expect(*update.Name).To(Equal("done"))
			Expect(update.Position).To(BeNil())
			return &model.List{ID: 700, Name: "done"}, nil
		}

		w := do(http.MethodPatch, "/api/boards/70/lists/700", map[string]any{"name": "done"})

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("maps an inaccessible board to 404 on listing", func() {
		listSvc.listByBoardFn = func(_ context.Context, _, _ int64) ([]model.List, error) {
			return nil, service.ErrNotFound
		}

		w := do(http.MethodGet, "/api/boards/80/lists", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 404 for a non-numeric list id", func() {
		w := do(http.MethodDelete, "/api/boards/70/lists/abc", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("deletes a list and returns 204", func() {
		listSvc.deleteFn = func(_ context.Context, _, boardID, listID int64) error {
			Expect(boardID).To(Equal(int64(70)))
			Expect(listID).To(Equal(int64(700)))
			return nil
		}

		w := do(http.MethodDelete, "/api/boards/70/lists/700", nil)

		Expect(w.Code).To(Equal(http.StatusNoContent))
	})
})
