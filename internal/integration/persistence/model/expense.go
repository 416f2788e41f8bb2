// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description       string          `gorm:"type:varchar(255);not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date              time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod     string          `gorm:"type:varchar(100);not null;index"`
	InstallmentNumber *int            `gorm:"type:integer"`
	InstallmentTotal  *int            `gorm:"type:integer"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:                m.ID,
		Description:       m.Description,
		Amount:            m.Amount,
		Date:              m.Date,
		PaymentMethod:     m.PaymentMethod,
		InstallmentNumber: m.InstallmentNumber,
		InstallmentTotal:  m.InstallmentTotal,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                expense.ID,
		Description:       expense.Description,
		Amount:            expense.Amount,
		Date:              expense.Date,
		PaymentMethod:     expense.PaymentMethod,
		InstallmentNumber: expense.InstallmentNumber,
		InstallmentTotal:  expense.InstallmentTotal,
		CreatedAt:         expense.CreatedAt,
		UpdatedAt:         expense.UpdatedAt,
	}
}
