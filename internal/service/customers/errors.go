package customers

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = fmt.Errorf("%w: customers: customer not found", domain.ErrNotFound)

	// ErrCustomerInactive возвращается для деактивированного (слитого) профиля
	ErrCustomerInactive = fmt.Errorf("%w: customers: customer profile is inactive", domain.ErrConflict)

	// ErrInvalidReason возвращается, когда причина короче минимальной длины
	ErrInvalidReason = fmt.Errorf("%w: customers: reason must be at least %d characters", domain.ErrValidation, domain.MinBlacklistReasonLength)

	// ErrNameRequired возвращается при создании клиента без имени
	ErrNameRequired = fmt.Errorf("%w: customers: customer full name is required", domain.ErrValidation)

	// ErrMergeSameCustomer возвращается при слиянии профиля с самим собой
	ErrMergeSameCustomer = fmt.Errorf("%w: customers: cannot merge customer into itself", domain.ErrValidation)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("customers: internal error")
)
