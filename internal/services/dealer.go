package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/DaniilSsv/rental-api/internal/models"
)

// DealerInput carries the writable fields of a dealer.
type DealerInput struct {
	Name     string
	Address  string
	City     string
	Email    string
	Postcode int
	Phone    *int
}

type DealerService struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewDealerService(db *gorm.DB, logger *slog.Logger) *DealerService {
	return &DealerService{DB: db, Log: logger}
}

func (s *DealerService) List(ctx context.Context) ([]models.Dealer, error) {
	var dealers []models.Dealer
	if err := s.DB.WithContext(ctx).Find(&dealers).Error; err != nil {
		return nil, fmt.Errorf("list dealers: %w", err)
	}
	return dealers, nil
}

func (s *DealerService) Get(ctx context.Context, id uint) (*models.Dealer, error) {
	var dealer models.Dealer
	if err := s.DB.WithContext(ctx).First(&dealer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dealer %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load dealer %d: %w", id, err)
	}
	return &dealer, nil
}

func (s *DealerService) Create(ctx context.Context, in DealerInput) (*models.Dealer, error) {
	if err := s.checkEmailFree(ctx, in.Email, 0); err != nil {
		return nil, err
	}
	dealer := models.Dealer{
		Name:     in.Name,
		Address:  in.Address,
		City:     in.City,
		Email:    in.Email,
		Postcode: in.Postcode,
		Phone:    in.Phone,
	}
	if err := s.DB.WithContext(ctx).Create(&dealer).Error; err != nil {
		return nil, fmt.Errorf("save dealer: %w", err)
	}
	s.Log.Info("dealer created", "dealer", dealer.ID, "name", dealer.Name)
	return &dealer, nil
}

func (s *DealerService) Update(ctx context.Context, id uint, in DealerInput) (*models.Dealer, error) {
	var dealer models.Dealer
	if err := s.DB.WithContext(ctx).First(&dealer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dealer %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load dealer %d: %w", id, err)
	}
	if err := s.checkEmailFree(ctx, in.Email, dealer.ID); err != nil {
		return nil, err
	}

	dealer.Name = in.Name
	dealer.Address = in.Address
	dealer.City = in.City
	dealer.Email = in.Email
	dealer.Postcode = in.Postcode
	dealer.Phone = in.Phone
	if err := s.DB.WithContext(ctx).Save(&dealer).Error; err != nil {
		return nil, fmt.Errorf("save dealer %d: %w", id, err)
	}
	return &dealer, nil
}

// Delete removes a dealer and its whole object graph: for every owned car the
// rental and popularity cascade runs first, then the cars go, then the
// dealer. Everything commits in one transaction.
func (s *DealerService) Delete(ctx context.Context, id uint) error {
	var dealer models.Dealer
	if err := s.DB.WithContext(ctx).Preload("Cars").First(&dealer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("dealer %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("load dealer %d: %w", id, err)
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, car := range dealer.Cars {
			if err := deleteCarGraph(tx, car.ID); err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Dealer{}, dealer.ID).Error; err != nil {
			return fmt.Errorf("delete dealer %d: %w", dealer.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.Log.Info("dealer deleted", "dealer", dealer.ID, "cars", len(dealer.Cars))
	return nil
}

func (s *DealerService) checkEmailFree(ctx context.Context, email string, selfID uint) error {
	var count int64
	q := s.DB.WithContext(ctx).Model(&models.Dealer{}).Where("email = ?", email)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("check dealer email: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("dealer email %s already registered: %w", email, ErrConflict)
	}
	return nil
}
