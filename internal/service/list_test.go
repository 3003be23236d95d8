package service_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"corkboard.app/api/common/id"
	"corkboard.app/api/internal/model"
	"corkboard.app/api/internal/service"
	"corkboard.app/api/internal/store"
)

// seedList wires list 700 into board 70 on top of seedBoard.
func seedList(stores *mockStores) {
	seedBoard(stores)
	stores.lists.getByIDFn = func(_ context.Context, listID int64) (*model.List, error) {
		if listID != 700 {
			return nil, store.ErrNotFound
		}
		return &model.List{ID: 700, Name: "todo", Position: 0, BoardID: 70}, nil
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

var _ = Describe("ListService", func() {
	var (
		svc      service.ListService
		stores   *mockStores
		txRunner *mockTxRunner
		pub      *mockPublisher
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newMockStores()
		txRunner = &mockTxRunner{stores: stores}
		pub = &mockPublisher{tx: txRunner}

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		seedList(stores)
		svc = service.NewListService(stores, txRunner, pub)
	})

	Describe("Create", func() {
		It("should create a list and broadcast list_created to the workspace", func() {
			stores.lists.createFn = func(_ context.Context, list *model.List) error {
				Expect(list.BoardID).To(Equal(int64(70)))
				Expect(list.Position).To(Equal(2))
				return nil
			}

			list, err := svc.Create(ctx, memberID, 70, "doing", 2)

			Expect(err).NotTo(HaveOccurred())
			Expect(list.Name).To(Equal("doing"))
			Expect(pub.events).To(HaveLen(1))
			Expect(pub.events[0].workspaceID).To(Equal(int64(7)))
		})

		It("should return ErrNotFound for a stranger", func() {
			_, err := svc.Create(ctx, strangerID, 70, "doing", 0)
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("should return ErrNotFound for a missing board", func() {
			_, err := svc.Create(ctx, ownerID, 999, "doing", 0)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("Update", func() {
		It("should apply only the provided fields", func() {
			stores.lists.updateFn = func(_ context.Context, list *model.List) error {
				Expect(list.Name).To(Equal("todo"))
				Expect(list.Position).To(Equal(5))
				return nil
			}

			list, err := svc.Update(ctx, memberID, 70, 700, service.ListUpdate{Position: intPtr(5)})

			Expect(err).NotTo(HaveOccurred())
			Expect(list.Name).To(Equal("todo"))
			Expect(list.Position).To(Equal(5))
		})

		It("should rename when a name is provided", func() {
			list, err := svc.Update(ctx, memberID, 70, 700, service.ListUpdate{Name: strPtr("  blocked ")})

			Expect(err).NotTo(HaveOccurred())
			Expect(list.Name).To(Equal("blocked"))
		})

		It("should broadcast list_updated after the commit", func() {
			_, err := svc.Update(ctx, memberID, 70, 700, service.ListUpdate{Name: strPtr("blocked")})

			Expect(err).NotTo(HaveOccurred())
			Expect(pub.events).To(HaveLen(1))
			Expect(pub.events[0].afterTxCommit).To(BeTrue())

			var event struct {
				Type string `json:"type"`
			}
			Expect(json.Unmarshal(pub.events[0].msg, &event)).To(Succeed())
			Expect(event.Type).To(Equal("list_updated"))
		})

		It("should return ErrNotFound for a stranger", func() {
			_, err := svc.Update(ctx, strangerID, 70, 700, service.ListUpdate{Name: strPtr("x")})
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("should return ErrNotFound when addressed through a board it does not belong to", func() {
			updateCalled := false
			stores.lists.updateFn = func(_ context.Context, _ *model.List) error {
				updateCalled = true
				return nil
			}

			_, err := svc.Update(ctx, ownerID, 80, 700, service.ListUpdate{Name: strPtr("x")})

			Expect(err).To(MatchError(service.ErrNotFound))
			Expect(updateCalled).To(BeFalse())
			Expect(pub.events).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("should delete and broadcast list_deleted with the board id", func() {
			stores.lists.deleteFn = func(_ context.Context, listID int64) error {
				Expect(listID).To(Equal(int64(700)))
				return nil
			}

			Expect(svc.Delete(ctx, ownerID, 70, 700)).To(Succeed())

			Expect(pub.events).To(HaveLen(1))
			var event struct {
				Type    string `json:"type"`
				Payload struct {
					ID      int64 `json:"id,string"`
					BoardID int64 `json:"board_id,string"`
				} `json:"payload"`
			}
			Expect(json.Unmarshal(pub.events[0].msg, &event)).To(Succeed())
			Expect(event.Type).To(Equal("list_deleted"))
			Expect(event.Payload.BoardID).To(Equal(int64(70)))
		})

		It("should return ErrNotFound for a missing list", func() {
			Expect(svc.Delete(ctx, ownerID, 70, 999)).To(MatchError(service.ErrNotFound))
			Expect(pub.events).To(BeEmpty())
		})

		It("should return ErrNotFound when addressed through a board it does not belong to", func() {
			deleteCalled := false
			stores.lists.deleteFn = func(_ context.Context, _ int64) error {
				deleteCalled = true
				return nil
			}

			Expect(svc.Delete(ctx, ownerID, 80, 700)).To(MatchError(service.ErrNotFound))
			Expect(deleteCalled).To(BeFalse())
			Expect(pub.events).To(BeEmpty())
		})
	})

	Describe("ListByBoard", func() {
		It("should return the board's lists for a member", func() {
			stores.lists.listByBoardFn = func(_ context.Context, boardID int64) ([]model.List, error) {
				Expect(boardID).To(Equal(int64(70)))
				return []model.List{{ID: 700}, {ID: 701}}, nil
			}

			lists, err := svc.ListByBoard(ctx, memberID, 70)

			Expect(err).NotTo(HaveOccurred())
			Expect(lists).To(HaveLen(2))
		})

		It("should return ErrNotFound for a stranger", func() {
			_, err := svc.ListByBoard(ctx, strangerID, 70)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})
})
