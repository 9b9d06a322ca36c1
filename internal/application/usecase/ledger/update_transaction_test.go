package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

func TestUpdateTransaction_AmountChangeSameAccount(t *testing.T) {
	// Balance 800 with an existing expense of 200 applied (started at 1000).
	f := newLedgerFixture(800)
	txnID := f.addTransaction(f.expenseCategory, &f.accountID, entity.TransactionTypeExpense, 200)
	uc := NewUpdateTransactionUseCase(f.uow)

	out, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		AccountID:     &f.accountID,
		Type:          entity.TransactionTypeExpense,
		Amount:        500,
		Date:          testDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.balance(f.accountID); got != 500 {
		t.Errorf("expected balance 500 after reversal and re-apply, got %d", got)
	}
	if out.Transaction.Amount != 500 {
		t.Errorf("expected amount 500, got %d", out.Transaction.Amount)
	}
}

func TestUpdateTransaction_EffectiveBalanceAllowsGrowingExpense(t *testing.T) {
	// Balance 0 with an expense of 1000 applied (started at 1000). Raising
	// the expense to 1000 is fine only because the old 1000 comes back first.
	f := newLedgerFixture(0)
	txnID := f.addTransaction(f.expenseCategory, &f.accountID, entity.TransactionTypeExpense, 1000)
	uc := NewUpdateTransactionUseCase(f.uow)

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		AccountID:     &f.accountID,
		Type:          entity.TransactionTypeExpense,
		Amount:        1000,
		Date:          testDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.balance(f.accountID); got != 0 {
		t.Errorf("expected balance 0, got %d", got)
	}
}

func TestUpdateTransaction_EffectiveBalanceRejectsExcessiveExpense(t *testing.T) {
	f := newLedgerFixture(0)
	txnID := f.addTransaction(f.expenseCategory, &f.accountID, entity.TransactionTypeExpense, 1000)
	uc := NewUpdateTransactionUseCase(f.uow)

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		AccountID:     &f.accountID,
		Type:          entity.TransactionTypeExpense,
		Amount:        1001,
		Date:          testDate(),
	})
	if !errors.Is(err, domainerror.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	if got := f.balance(f.accountID); got != 0 {
		t.Errorf("balance must be unchanged after rejection, got %d", got)
	}
	if f.state.transactions[txnID].Amount != 1000 {
		t.Errorf("transaction must be unchanged after rejection")
	}
}

func TestUpdateTransaction_TypeChangeIncomeToExpense(t *testing.T) {
	// Balance 1000 consisting entirely of one income of 1000. Turning that
	// income into an expense of 500 must fail: the effective balance after
	// reversal is 0.
	f := newLedgerFixture(1000)
	txnID := f.addTransaction(f.incomeCategory, &f.accountID, entity.TransactionTypeIncome, 1000)
	uc := NewUpdateTransactionUseCase(f.uow)

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		AccountID:     &f.accountID,
		Type:          entity.TransactionTypeExpense,
		Amount:        500,
		Date:          testDate(),
	})
	if !errors.Is(err, domainerror.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if got := f.balance(f.accountID); got != 1000 {
		t.Errorf("balance must be unchanged after rejection, got %d", got)
	}
}

func TestUpdateTransaction_TypeChangeExpenseToIncome(t *testing.T) {
	// Balance 700 with an expense of 300 applied. Flipping it to an income
	// of 300 reverses the 300 and adds 300: balance becomes 1300.
	f := newLedgerFixture(700)
	txnID := f.addTransaction(f.expenseCategory, &f.accountID, entity.TransactionTypeExpense, 300)
	uc := NewUpdateTransactionUseCase(f.uow)

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.incomeCategory,
		AccountID:     &f.accountID,
		Type:          entity.TransactionTypeIncome,
		Amount:        300,
		Date:          testDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.balance(f.accountID); got != 1300 {
		t.Errorf("expected balance 1300, got %d", got)
	}
}

func TestUpdateTransaction_MoveExpenseBetweenAccounts(t *testing.T) {
	// An expense of 400 sits on account A (balance 600, started at 1000).
	// Moving it to account B refunds A to 1000 and debits B to 100.
	f := newLedgerFixture(600)
	otherID := f.addAccount("side account", 500)
	txnID := f.addTransaction(f.expenseCategory, &f.accountID, entity.TransactionTypeExpense, 400)
	uc := NewUpdateTransactionUseCase(f.uow)

	out, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		AccountID:     &otherID,
		Type:          entity.TransactionTypeExpense,
		Amount:        400,
		Date:          testDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.balance(f.accountID); got != 1000 {
		t.Errorf("old account must be refunded to 1000, got %d", got)
	}
	if got := f.balance(otherID); got != 100 {
		t.Errorf("new account must be debited to 100, got %d", got)
	}
	if out.Transaction.AccountName != "side account" {
		t.Errorf("output must carry the new account, got %q", out.Transaction.AccountName)
	}
}

func TestUpdateTransaction_MoveIncomeAwayRejectedWhenOldAccountWouldGoNegative(t *testing.T) {
	// Account A holds only an income of 1000 (balance 1000). Moving that
	// income to account B would drive A to 0 minus nothing here, so use a
	// spent variant: balance 200 after expenses, income 1000 seeded.
	f := newLedgerFixture(200)
	otherID := f.addAccount("side account", 0)
	txnID := f.addTransaction(f.incomeCategory, &f.accountID, entity.TransactionTypeIncome, 1000)
	uc := NewUpdateTransactionUseCase(f.uow)

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.incomeCategory,
		AccountID:     &otherID,
		Type:          entity.TransactionTypeIncome,
		Amount:        1000,
		Date:          testDate(),
	})
	if !errors.Is(err, domainerror.ErrBalanceWouldBeNegative) {
		t.Fatalf("expected ErrBalanceWouldBeNegative, got %v", err)
	}

	if got := f.balance(f.accountID); got != 200 {
		t.Errorf("old balance must be unchanged, got %d", got)
	}
	if got := f.balance(otherID); got != 0 {
		t.Errorf("new balance must be unchanged, got %d", got)
	}
}

func TestUpdateTransaction_DetachFromAccount(t *testing.T) {
	// Detaching an expense refunds the old account and links nothing new.
	f := newLedgerFixture(600)
	txnID := f.addTransaction(f.expenseCategory, &f.accountID, entity.TransactionTypeExpense, 400)
	uc := NewUpdateTransactionUseCase(f.uow)

	out, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		AccountID:     nil,
		Type:          entity.TransactionTypeExpense,
		Amount:        400,
		Date:          testDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.balance(f.accountID); got != 1000 {
		t.Errorf("old account must be refunded to 1000, got %d", got)
	}
	if out.Transaction.AccountID != nil {
		t.Errorf("expected detached output, got account %v", out.Transaction.AccountID)
	}
}

func TestUpdateTransaction_AttachToAccount(t *testing.T) {
	// Attaching a previously detached expense debits the target account.
	f := newLedgerFixture(1000)
	txnID := f.addTransaction(f.expenseCategory, nil, entity.TransactionTypeExpense, 400)
	uc := NewUpdateTransactionUseCase(f.uow)

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		AccountID:     &f.accountID,
		Type:          entity.TransactionTypeExpense,
		Amount:        400,
		Date:          testDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.balance(f.accountID); got != 600 {
		t.Errorf("expected balance 600, got %d", got)
	}
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	f := newLedgerFixture(1000)
	uc := NewUpdateTransactionUseCase(f.uow)

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: uuid.New(),
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		Type:          entity.TransactionTypeExpense,
		Amount:        100,
		Date:          testDate(),
	})
	if !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestUpdateTransaction_NotAuthorized(t *testing.T) {
	f := newLedgerFixture(1000)
	txnID := f.addTransaction(f.expenseCategory, nil, entity.TransactionTypeExpense, 100)
	uc := NewUpdateTransactionUseCase(f.uow)

	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txnID,
		UserID:        uuid.New(),
		CategoryID:    f.expenseCategory,
		Type:          entity.TransactionTypeExpense,
		Amount:        100,
		Date:          testDate(),
	})
	if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
		t.Fatalf("expected ErrNotAuthorizedToModifyTransaction, got %v", err)
	}
}

func TestLedger_BalanceMatchesTransactionHistory(t *testing.T) {
	// After any sequence of accepted operations, each balance must equal
	// its initial value plus the signed sum of referencing transactions.
	f := newLedgerFixture(10000)
	sideID := f.addAccount("side account", 5000)

	create := NewCreateTransactionUseCase(f.uow)
	update := NewUpdateTransactionUseCase(f.uow)
	del := NewDeleteTransactionUseCase(f.uow)

	mk := func(categoryID uuid.UUID, accountID *uuid.UUID, txnType entity.TransactionType, amount int64) uuid.UUID {
		t.Helper()
		out, err := create.Execute(context.Background(), CreateTransactionInput{
			UserID:     f.userID,
			CategoryID: categoryID,
			AccountID:  accountID,
			Type:       txnType,
			Amount:     amount,
			Date:       testDate(),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		return out.Transaction.ID
	}

	e1 := mk(f.expenseCategory, &f.accountID, entity.TransactionTypeExpense, 2000)
	mk(f.incomeCategory, &sideID, entity.TransactionTypeIncome, 3000)
	e3 := mk(f.expenseCategory, &sideID, entity.TransactionTypeExpense, 1000)
	mk(f.expenseCategory, nil, entity.TransactionTypeExpense, 700)

	if _, err := update.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: e1,
		UserID:        f.userID,
		CategoryID:    f.expenseCategory,
		AccountID:     &sideID,
		Type:          entity.TransactionTypeExpense,
		Amount:        1500,
		Date:          testDate(),
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, err := del.Execute(context.Background(), DeleteTransactionInput{
		TransactionID: e3,
		UserID:        f.userID,
	}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	initial := map[uuid.UUID]int64{f.accountID: 10000, sideID: 5000}
	for id, want := range initial {
		for _, txn := range f.state.transactions {
			if txn.AccountID != nil && *txn.AccountID == id {
				want += txn.SignedAmount()
			}
		}
		if got := f.balance(id); got != want {
			t.Errorf("account %s: balance %d does not match history sum %d", id, got, want)
		}
	}
}
