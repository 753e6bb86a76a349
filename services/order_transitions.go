package services

import (
	"errors"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"gorm.io/gorm"
)

// ----- Manager actions -----

// AssignOrder hands an order to a delivery person identified by username.
func (s *OrderService) AssignOrder(orderID uint, username string) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	crew, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.Repo.SetDeliveryCrew(orderID, crew.ID)
}

// GrantDeliveryRole adds the user to the delivery crew. No removal path.
func (s *OrderService) GrantDeliveryRole(username string) error {
	affected, err := s.UserRepo.UpdateRole(username, entity.RoleDelivery)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GrantManagerRole promotes the user to manager.
func (s *OrderService) GrantManagerRole(username string) error {
	affected, err := s.UserRepo.UpdateRole(username, entity.RoleManager)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- Delivery crew actions -----

// MarkDelivered closes the order. Only the assigned crew may do it, and only
// from Processing; Delivered is terminal.
func (s *OrderService) MarkDelivered(orderID, actingUserID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if o.DeliveryCrewID == nil || *o.DeliveryCrewID != actingUserID {
		return nil, ErrForbidden
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatusFromTo(tx, o.ID, entity.StatusProcessing, entity.StatusDelivered)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.GetOrderWithItems(o.ID)
}
