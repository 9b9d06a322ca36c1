package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// ledgerState is the shared in-memory backing store for the fake
// repositories. Finds return copies and Saves store copies, so mutations
// only become visible through an explicit Save, mirroring a database.
type ledgerState struct {
	users        map[uuid.UUID]entity.User
	accounts     map[uuid.UUID]entity.Account
	categories   map[uuid.UUID]entity.Category
	transactions map[uuid.UUID]entity.Transaction
}

func newLedgerState() *ledgerState {
	return &ledgerState{
		users:        make(map[uuid.UUID]entity.User),
		accounts:     make(map[uuid.UUID]entity.Account),
		categories:   make(map[uuid.UUID]entity.Category),
		transactions: make(map[uuid.UUID]entity.Transaction),
	}
}

func (s *ledgerState) clone() *ledgerState {
	c := newLedgerState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	return c
}

func (s *ledgerState) restore(from *ledgerState) {
	s.users = from.users
	s.accounts = from.accounts
	s.categories = from.categories
	s.transactions = from.transactions
}

// fakeUnitOfWork snapshots the state before running fn and restores it
// when fn fails, giving the same all-or-nothing visibility as a real
// database transaction.
type fakeUnitOfWork struct {
	state *ledgerState
}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, stores adapter.Stores) error) error {
	snapshot := u.state.clone()
	err := fn(ctx, adapter.Stores{
		Users:        &fakeUserRepo{state: u.state},
		Accounts:     &fakeAccountRepo{state: u.state},
		Categories:   &fakeCategoryRepo{state: u.state},
		Transactions: &fakeTransactionRepo{state: u.state},
	})
	if err != nil {
		u.state.restore(snapshot)
	}
	return err
}

type fakeUserRepo struct{ state *ledgerState }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.state.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.state.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.state.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.state.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.state.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeAccountRepo struct{ state *ledgerState }

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.state.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	a, ok := r.state.accounts[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	return &a, nil
}

func (r *fakeAccountRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeAccountRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.state.accounts {
		if a.UserID == userID {
			found := a
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Save(_ context.Context, account *entity.Account) error {
	r.state.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.state.accounts, id)
	return nil
}

type fakeCategoryRepo struct{ state *ledgerState }

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.state.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.state.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.state.categories {
		if c.UserID == userID {
			found := c
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.state.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.state.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ExistsByUserNameAndType(_ context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	for _, c := range r.state.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.UserID == userID && c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

type fakeTransactionRepo struct{ state *ledgerState }

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.state.transactions[transaction.ID] = *transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.state.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return &t, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	r.state.transactions[transaction.ID] = *transaction
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.state.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) ExistsByCategoryID(_ context.Context, categoryID uuid.UUID) (bool, error) {
	for _, t := range r.state.transactions {
		if t.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTransactionRepo) ExistsByAccountID(_ context.Context, accountID uuid.UUID) (bool, error) {
	for _, t := range r.state.transactions {
		if t.AccountID != nil && *t.AccountID == accountID {
			return true, nil
		}
	}
	return false, nil
}

// ledgerFixture seeds a user with one account and one category per type.
type ledgerFixture struct {
	state           *ledgerState
	uow             *fakeUnitOfWork
	userID          uuid.UUID
	accountID       uuid.UUID
	incomeCategory  uuid.UUID
	expenseCategory uuid.UUID
}

func newLedgerFixture(initialBalance int64) *ledgerFixture {
	state := newLedgerState()

	user := entity.NewUser("tester@example.com", "tester", "hash")
	state.users[user.ID] = *user

	account := entity.NewAccount(user.ID, "main account", initialBalance)
	state.accounts[account.ID] = *account

	income := entity.NewCategory(user.ID, "salary", entity.CategoryTypeIncome)
	state.categories[income.ID] = *income

	expense := entity.NewCategory(user.ID, "groceries", entity.CategoryTypeExpense)
	state.categories[expense.ID] = *expense

	return &ledgerFixture{
		state:           state,
		uow:             &fakeUnitOfWork{state: state},
		userID:          user.ID,
		accountID:       account.ID,
		incomeCategory:  income.ID,
		expenseCategory: expense.ID,
	}
}

func (f *ledgerFixture) balance(accountID uuid.UUID) int64 {
	return f.state.accounts[accountID].Balance
}

func (f *ledgerFixture) addAccount(name string, balance int64) uuid.UUID {
	account := entity.NewAccount(f.userID, name, balance)
	f.state.accounts[account.ID] = *account
	return account.ID
}

func (f *ledgerFixture) addTransaction(categoryID uuid.UUID, accountID *uuid.UUID, transactionType entity.TransactionType, amount int64) uuid.UUID {
	txn := entity.NewTransaction(f.userID, categoryID, accountID, transactionType, amount, "seeded", testDate())
	f.state.transactions[txn.ID] = *txn
	return txn.ID
}

func testDate() time.Time {
	return time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)
}
