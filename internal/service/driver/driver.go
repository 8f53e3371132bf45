package driver

import (
	"context"
	"fmt"
	"slices"

	"dispatch/internal/entities"
)

// Service reads drivers and keeps the two one-way team references consistent.
type Service struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Service) Get(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return driver, nil
}

// PairTeam links a and b to each other. Former partners of either driver are
// unlinked in the same transaction.
func (s *Service) PairTeam(ctx context.Context, a, b int64) (*entities.Driver, error) {
	if a <= 0 || b <= 0 {
		return nil, ErrInvalidDriverID
	}
	if a == b {
		return nil, ErrCannotPairSelf
	}

	var paired *entities.Driver
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.lock(ctx, a, b)
		if err != nil {
			return err
		}
		first, second := locked[a], locked[b]

		if isPairedWith(first, b) && isPairedWith(second, a) {
			paired = first
			return nil
		}

		for _, d := range []*entities.Driver{first, second} {
			partner := d.TeamDriverID
			if partner == nil || *partner == a || *partner == b {
				continue
			}
			if err := s.detachPartner(ctx, *partner, d.ID); err != nil {
				return err
			}
		}

		if _, err := s.repository.Update(ctx, entities.DriverModify{ID: b, TeamDriverID: &a}); err != nil {
			return fmt.Errorf("link driver %d: %w", b, err)
		}
		paired, err = s.repository.Update(ctx, entities.DriverModify{ID: a, TeamDriverID: &b})
		if err != nil {
			return fmt.Errorf("link driver %d: %w", a, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paired, nil
}

// UnpairTeam clears the team references on id and on its partner.
// Unpairing a solo driver returns it unchanged.
//
// The partner is taken from the locked row of id, never from an earlier read,
// so a concurrent PairTeam cannot leave a one-sided pairing behind.
func (s *Service) UnpairTeam(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	var unpaired *entities.Driver
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := s.repository.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if driver.TeamDriverID == nil {
			unpaired = driver
			return nil
		}
		partnerID := *driver.TeamDriverID

		locked, err := s.lock(ctx, id, partnerID)
		if err != nil {
			return err
		}
		driver, partner := locked[id], locked[partnerID]

		switch {
		case driver.TeamDriverID == nil:
			unpaired = driver
			return nil
		case *driver.TeamDriverID != partnerID:
			// id is locked now, so its current partner cannot change any more
			partnerID = *driver.TeamDriverID
			partner, err = s.repository.GetForUpdate(ctx, partnerID)
			if err != nil {
				return fmt.Errorf("lock driver %d: %w", partnerID, err)
			}
		}

		if isPairedWith(partner, id) {
			if _, err := s.repository.Update(ctx, entities.DriverModify{ID: partnerID, ClearTeamDriver: true}); err != nil {
				return fmt.Errorf("unlink driver %d: %w", partnerID, err)
			}
		}

		unpaired, err = s.repository.Update(ctx, entities.DriverModify{ID: id, ClearTeamDriver: true})
		if err != nil {
			return fmt.Errorf("unlink driver %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return unpaired, nil
}

// lock takes row locks in ascending id order.
func (s *Service) lock(ctx context.Context, ids ...int64) (map[int64]*entities.Driver, error) {
	ordered := slices.Clone(ids)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	locked := make(map[int64]*entities.Driver, len(ordered))
	for _, id := range ordered {
		driver, err := s.repository.GetForUpdate(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lock driver %d: %w", id, err)
		}
		locked[id] = driver
	}
	return locked, nil
}

// detachPartner clears partnerID's back reference when it still points at ownerID.
func (s *Service) detachPartner(ctx context.Context, partnerID, ownerID int64) error {
	partner, err := s.repository.GetForUpdate(ctx, partnerID)
	if err != nil {
		return fmt.Errorf("lock former partner %d: %w", partnerID, err)
	}
	if !isPairedWith(partner, ownerID) {
		return nil
	}
	if _, err := s.repository.Update(ctx, entities.DriverModify{ID: partnerID, ClearTeamDriver: true}); err != nil {
		return fmt.Errorf("unlink former partner %d: %w", partnerID, err)
	}
	return nil
}

func isPairedWith(d *entities.Driver, partnerID int64) bool {
	return d.TeamDriverID != nil && *d.TeamDriverID == partnerID
}
