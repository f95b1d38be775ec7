package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Person represents a person record in the database.
type Person struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	NationalID string    `gorm:"column:national_id;type:varchar(32);not null"`
	BirthDate  time.Time `gorm:"type:date;not null"`
}

// TableName specifies the table name for the Person model.
func (Person) TableName() string {
	return "person"
}

// Account represents an account record in the database.
type Account struct {
	ID                 uint            `gorm:"primaryKey"`
	OwnerID            uint            `gorm:"column:owner_id;not null;index"`
	Owner              *Person         `gorm:"foreignKey:OwnerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Balance            decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	DailyWithdrawLimit decimal.Decimal `gorm:"column:daily_withdraw_limit;type:numeric(20,2);not null"`
	Active             bool            `gorm:"not null"`
	Type               int             `gorm:"column:type;not null"`
	CreatedAt          time.Time       `gorm:"not null"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "account"
}

// Transaction represents a ledger entry in the database.
type Transaction struct {
	ID         uint            `gorm:"primaryKey"`
	AccountID  uint            `gorm:"column:account_id;not null;index"`
	Account    *Account        `gorm:"foreignKey:AccountID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Amount     decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	OccurredAt time.Time       `gorm:"column:occurred_at;not null;index"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transaction"
}

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{&Person{}, &Account{}, &Transaction{}}
}
