package service

import (
	"context"
	"fmt"
	"strings"

	"corkboard.app/api/common/id"
	"corkboard.app/api/internal/model"
)

// CardUpdate carries the optional fields of a card update. Nil fields
// keep their current value. Description is applied only when
// DescriptionSet is true, so a nil Description with the flag set clears
// the field. A non-nil ListID moves the card, which requires access to
// the destination list's workspace as well.
type CardUpdate struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	Position       *int
	ListID         *int64
}

type CardService interface {
	ListByList(ctx context.Context, userID, listID int64) ([]model.Card, error)
	Get(ctx context.Context, userID, cardID int64) (*model.Card, error)
	Create(ctx context.Context, userID, listID int64, name string, description *string, position int) (*model.Card, error)
	Update(ctx context.Context, userID, listID, cardID int64, update CardUpdate) (*model.Card, error)
	Delete(ctx context.Context, userID, listID, cardID int64) error
}

type cardService struct {
	stores   StoreProvider
	txRunner TxRunner
	pub      Publisher
}

func NewCardService(stores StoreProvider, txRunner TxRunner, pub Publisher) CardService {
	return &cardService{stores: stores, txRunner: txRunner, pub: pub}
}

func (s *cardService) ListByList(ctx context.Context, userID, listID int64) ([]model.Card, error) {
	resolver := accessResolver{stores: s.stores}
	if _, _, err := resolver.requireList(ctx, userID, listID); err != nil {
		return nil, err
	}

	cards, err := s.stores.Cards().ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	return cards, nil
}

func (s *cardService) Get(ctx context.Context, userID, cardID int64) (*model.Card, error) {
	resolver := accessResolver{stores: s.stores}
	card, _, err := resolver.requireCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *cardService) Create(ctx context.Context, userID, listID int64, name string, description *string, position int) (*model.Card, error) {
	var (
		card        *model.Card
		workspaceID int64
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		_, ws, err := resolver.requireList(ctx, userID, listID)
		if err != nil {
			return err
		}

		card = &model.Card{
			ID:          id.New(),
			Name:        strings.TrimSpace(name),
			Description: description,
			Position:    position,
			ListID:      listID,
		}
		if err := stores.Cards().Create(ctx, card); err != nil {
			return fmt.Errorf("creating card: %w", err)
		}
		workspaceID = ws.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcast(ctx, s.pub, workspaceID, model.EventCardCreated, card)

	return card, nil
}

// Update applies a partial update. The listID must be the card's
// current parent or the card reads as absent. When the card moves to
// another list, both the source and destination workspaces must be
// accessible to the caller before anything changes; an event goes to
// each workspace if they differ.
func (s *cardService) Update(ctx context.Context, userID, listID, cardID int64, update CardUpdate) (*model.Card, error) {
	var (
		card   *model.Card
		srcWS  int64
		destWS int64
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		current, ws, err := resolver.requireCard(ctx, userID, cardID)
		if err != nil {
			return err
		}
		if current.ListID != listID {
			return ErrNotFound
		}
		srcWS = ws.ID
		destWS = ws.ID

		if update.ListID != nil && *update.ListID != current.ListID {
			_, destWorkspace, err := resolver.requireList(ctx, userID, *update.ListID)
			if err != nil {
				return err
			}
			destWS = destWorkspace.ID
			current.ListID = *update.ListID
		}

		if update.Name != nil {
			current.Name = strings.TrimSpace(*update.Name)
		}
		if update.DescriptionSet {
			current.Description = update.Description
		}
		if update.Position != nil {
			current.Position = *update.Position
		}

		if err := stores.Cards().Update(ctx, current); err != nil {
			return fmt.Errorf("updating card: %w", err)
		}
		card = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcast(ctx, s.pub, srcWS, model.EventCardUpdated, card)
	if destWS != srcWS {
		broadcast(ctx, s.pub, destWS, model.EventCardUpdated, card)
	}

	return card, nil
}

func (s *cardService) Delete(ctx context.Context, userID, listID, cardID int64) error {
	var workspaceID int64
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		resolver := accessResolver{stores: stores}
		card, ws, err := resolver.requireCard(ctx, userID, cardID)
		if err != nil {
			return err
		}
		if card.ListID != listID {
			return ErrNotFound
		}
		if err := stores.Cards().Delete(ctx, card.ID); err != nil {
			return fmt.Errorf("deleting card: %w", err)
		}
		workspaceID = ws.ID
		return nil
	})
	if err != nil {
		return err
	}

	broadcast(ctx, s.pub, workspaceID, model.EventCardDeleted, struct {
		ID     int64 `json:"id,string"`
		ListID int64 `json:"list_id,string"`
	}{cardID, listID})

	return nil
}
