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

const (
	ownerID    int64 = 1
	memberID   int64 = 2
	strangerID int64 = 3
)

// seedWorkspace wires the workspace mocks for a workspace owned by
// ownerID with memberID as its single member.
func seedWorkspace(stores *mockStores, workspaceID int64) {
	stores.workspaces.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
		if wsID != workspaceID {
			return nil, store.ErrNotFound
		}
		return &model.Workspace{ID: workspaceID, Name: "product", OwnerID: ownerID}, nil
	}
	stores.workspaces.hasAccessFn = func(_ context.Context, wsID, userID int64) (bool, error) {
		return wsID == workspaceID && (userID == ownerID || userID == memberID), nil
	}
}

var _ = Describe("WorkspaceService", func() {
	var (
		svc      service.WorkspaceService
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

		seedWorkspace(stores, 7)
		svc = service.NewWorkspaceService(stores, txRunner, pub)
	})

	Describe("Create", func() {
		It("should persist the workspace with the caller as owner", func() {
			var captured *model.Workspace
			stores.workspaces.createFn = func(_ context.Context, ws *model.Workspace) error {
				captured = ws
				return nil
			}

			ws, err := svc.Create(ctx, ownerID, "  product  ")

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.ID).NotTo(BeZero())
			Expect(ws.Name).To(Equal("product"))
			Expect(ws.OwnerID).To(Equal(ownerID))
			Expect(captured).NotTo(BeNil())
		})

		It("should broadcast workspace_created", func() {
			ws, err := svc.Create(ctx, ownerID, "product")

			Expect(err).NotTo(HaveOccurred())
			Expect(pub.events).To(HaveLen(1))
			Expect(pub.events[0].workspaceID).To(Equal(ws.ID))

			var event struct {
				Type string `json:"type"`
			}
			Expect(json.Unmarshal(pub.events[0].msg, &event)).To(Succeed())
			Expect(event.Type).To(Equal("workspace_created"))
		})
	})

	Describe("Get", func() {
		It("should return the workspace with its members for the owner", func() {
			stores.workspaces.listMembersFn = func(_ context.Context, _ int64) ([]model.User, error) {
				return []model.User{{ID: memberID, Email: "bob@example.com"}}, nil
			}

			ws, err := svc.Get(ctx, ownerID, 7)

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Members).To(HaveLen(1))
		})

		It("should allow a member to read the workspace", func() {
			_, err := svc.Get(ctx, memberID, 7)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should hide the workspace from a stranger behind ErrNotFound", func() {
			ws, err := svc.Get(ctx, strangerID, 7)

			Expect(err).To(MatchError(service.ErrNotFound))
			Expect(ws).To(BeNil())
		})

		It("should return ErrNotFound for a missing workspace", func() {
			_, err := svc.Get(ctx, ownerID, 999)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("Update", func() {
		It("should rename the workspace for the owner", func() {
			stores.workspaces.updateFn = func(_ context.Context, ws *model.Workspace) error {
				Expect(ws.Name).To(Equal("platform"))
				return nil
			}

			ws, err := svc.Update(ctx, ownerID, 7, "platform")

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Name).To(Equal("platform"))
		})

		It("should return ErrForbidden for a plain member", func() {
			_, err := svc.Update(ctx, memberID, 7, "platform")
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("should return ErrNotFound for a stranger", func() {
			_, err := svc.Update(ctx, strangerID, 7, "platform")
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("should broadcast workspace_updated after the commit", func() {
			_, err := svc.Update(ctx, ownerID, 7, "platform")

			Expect(err).NotTo(HaveOccurred())
			Expect(pub.events).To(HaveLen(1))
			Expect(pub.events[0].afterTxCommit).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("should delete for the owner and broadcast workspace_deleted", func() {
			deleted := false
			stores.workspaces.deleteFn = func(_ context.Context, wsID int64) error {
				Expect(wsID).To(Equal(int64(7)))
				deleted = true
				return nil
			}

			Expect(svc.Delete(ctx, ownerID, 7)).To(Succeed())
			Expect(deleted).To(BeTrue())

			Expect(pub.events).To(HaveLen(1))
			var event struct {
				Type    string `json:"type"`
				Payload struct {
					ID int64 `json:"id,string"`
				} `json:"payload"`
			}
			Expect(json.Unmarshal(pub.events[0].msg, &event)).To(Succeed())
			Expect(event.Type).To(Equal("workspace_deleted"))
			Expect(event.Payload.ID).To(Equal(int64(7)))
		})

		It("should return ErrForbidden for a plain member", func() {
			Expect(svc.Delete(ctx, memberID, 7)).To(MatchError(service.ErrForbidden))
			Expect(pub.events).To(BeEmpty())
		})

		It("should not broadcast when the delete fails", func() {
			stores.workspaces.deleteFn = func(_ context.Context, _ int64) error {
				return store.ErrNotFound
			}

			Expect(svc.Delete(ctx, ownerID, 7)).To(HaveOccurred())
			Expect(pub.events).To(BeEmpty())
		})
	})

	Describe("AddMember", func() {
		BeforeEach(func() {
			stores.users.getByIDFn = func(_ context.Context, userID int64) (*model.User, error) {
				if userID == strangerID {
					return &model.User{ID: strangerID, Email: "carol@example.com"}, nil
				}
				return nil, store.ErrNotFound
			}
			stores.workspaces.listMembersFn = func(_ context.Context, _ int64) ([]model.User, error) {
				return []model.User{{ID: strangerID}}, nil
			}
		})

		It("should add the user and broadcast member_added", func() {
			stores.workspaces.addMemberFn = func(_ context.Context, wsID, userID int64) (bool, error) {
				Expect(wsID).To(Equal(int64(7)))
				Expect(userID).To(Equal(strangerID))
				return true, nil
			}

			ws, err := svc.AddMember(ctx, ownerID, 7, strangerID)

			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Members).To(HaveLen(1))
			Expect(pub.events).To(HaveLen(1))

			var event struct {
				Type string `json:"type"`
			}
			Expect(json.Unmarshal(pub.events[0].msg, &event)).To(Succeed())
			Expect(event.Type).To(Equal("member_added"))
		})

		It("should succeed without a second event when the user is already a member", func() {
			stores.workspaces.addMemberFn = func(_ context.Context, _, _ int64) (bool, error) {
				return false, nil
			}

			ws, err := svc.AddMember(ctx, ownerID, 7, strangerID)

			Expect(err).NotTo(HaveOccurred())
			Expect(ws).NotTo(BeNil())
			Expect(pub.events).To(BeEmpty())
		})

		It("should return ErrForbidden for a plain member", func() {
			_, err := svc.AddMember(ctx, memberID, 7, strangerID)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("should return ErrNotFound when the user does not exist", func() {
			_, err := svc.AddMember(ctx, ownerID, 7, 12345)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("List", func() {
		It("should return the workspaces visible to the user", func() {
			stores.workspaces.listVisibleToUserFn = func(_ context.Context, userID int64) ([]model.Workspace, error) {
				Expect(userID).To(Equal(memberID))
				return []model.Workspace{{ID: 7}, {ID: 8}}, nil
			}

			workspaces, err := svc.List(ctx, memberID)

			Expect(err).NotTo(HaveOccurred())
			Expect(workspaces).To(HaveLen(2))
		})
	})
})
