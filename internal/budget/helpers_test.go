package budget

import (
	"fmt"
	"time"

	"moneta/internal/models"
)

var testSeq int

func nextTestID() string {
	testSeq++
	return fmt.Sprintf("test-%d", testSeq)
}

func makeTx(t models.TransactionType, c models.Category, amount int64, date time.Time) models.Transaction {
	return models.Transaction{
		Base:        models.Base{ID: nextTestID()},
		Type:        t,
		Category:    c,
		Amount:      amount,
		Description: "test transaction",
		Date:        date,
	}
}

func makeLimitReminder(c models.Category, maxAmount int64) models.Reminder {
	cat := c
	return models.Reminder{
		Base:        models.Base{ID: nextTestID()},
		Type:        models.ReminderTypeExpenseLimit,
		Title:       "limit " + string(c),
		Description: "expense limit",
		Category:    &cat,
		MaxAmount:   &maxAmount,
		DueDate:     time.Now(),
	}
}

func makeTargetReminder(minAmount int64) models.Reminder {
	return models.Reminder{
		Base:        models.Base{ID: nextTestID()},
		Type:        models.ReminderTypeSavingsTarget,
		Title:       "savings target",
		Description: "monthly savings",
		MinAmount:   &minAmount,
		DueDate:     time.Now(),
	}
}

func makeGeneralReminder() models.Reminder {
	return models.Reminder{
		Base:        models.Base{ID: nextTestID()},
		Type:        models.ReminderTypeGeneral,
		Title:       "pay rent",
		Description: "general reminder",
		DueDate:     time.Now(),
	}
}
