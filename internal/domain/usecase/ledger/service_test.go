package ledger

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/persistence"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time                  { return s.now }
func (s stubClock) Since(t time.Time) time.Duration { return s.now.Sub(t) }
func (s stubClock) WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

type nopLogger struct{}

func (nopLogger) SetLevel(coreport.LogLevel)   {}
func (nopLogger) GetLevel() coreport.LogLevel  { return coreport.LogLevelInfo }
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }

type fakeBalanceRepo struct {
	balances map[uint64]*entity.Balance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[uint64]*entity.Balance)}
}

func (r *fakeBalanceRepo) GetOrCreate(_ context.Context, userID uint64, zero *entity.Balance) (*entity.Balance, error) {
	if existing, ok := r.balances[userID]; ok {
		copied := *existing
		return &copied, nil
	}
	stored := *zero
	r.balances[userID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeBalanceRepo) Replace(_ context.Context, balance *entity.Balance) error {
	stored := *balance
	r.balances[balance.UserID] = &stored
	return nil
}

type fakeTransactionRepo struct {
	rows   []entity.Transaction
	nextID uint64
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.nextID++
	tx.ID = r.nextID
	r.rows = append(r.rows, *tx)
	return nil
}

func (r *fakeTransactionRepo) ListByUser(_ context.Context, userID uint64) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeExpenseRepo struct {
	rows   []entity.Expense
	nextID uint64
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.nextID++
	expense.ID = r.nextID
	r.rows = append(r.rows, *expense)
	return nil
}

func (r *fakeExpenseRepo) ListByUser(_ context.Context, userID uint64) ([]entity.Expense, error) {
	var out []entity.Expense
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type savingsKey struct {
	userID uint64
	index  int64
}

type fakeSavingsRepo struct {
	rows map[savingsKey]*entity.SavingsEntry
}

func newFakeSavingsRepo() *fakeSavingsRepo {
	return &fakeSavingsRepo{rows: make(map[savingsKey]*entity.SavingsEntry)}
}

func (r *fakeSavingsRepo) Create(_ context.Context, entry *entity.SavingsEntry) error {
	key := savingsKey{entry.UserID, entry.Index}
	if _, ok := r.rows[key]; ok {
		return errs.ErrDuplicateAccount
	}
	stored := *entry
	r.rows[key] = &stored
	return nil
}

func (r *fakeSavingsRepo) ListByUser(_ context.Context, userID uint64) ([]entity.SavingsEntry, error) {
	var out []entity.SavingsEntry
	for key, entry := range r.rows {
		if key.userID == userID {
			out = append(out, *entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

func (r *fakeSavingsRepo) GetByIndex(_ context.Context, userID uint64, index int64) (*entity.SavingsEntry, error) {
	entry, ok := r.rows[savingsKey{userID, index}]
	if !ok {
		return nil, errs.ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeSavingsRepo) Update(_ context.Context, entry *entity.SavingsEntry) (*entity.SavingsEntry, error) {
	key := savingsKey{entry.UserID, entry.Index}
	existing, ok := r.rows[key]
	if !ok {
		return nil, errs.ErrNotFound
	}
	existing.Name = entry.Name
	existing.Amount = entry.Amount
	existing.Medium = entry.Medium
	copied := *existing
	return &copied, nil
}

func (r *fakeSavingsRepo) Delete(_ context.Context, userID uint64, index int64) error {
	key := savingsKey{userID, index}
	if _, ok := r.rows[key]; !ok {
		return errs.ErrNotFound
	}
	delete(r.rows, key)
	return nil
}

type accountKey struct {
	userID    uint64
	accountID string
}

type fakeAccountRepo struct {
	rows map[accountKey]*entity.DigitalAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{rows: make(map[accountKey]*entity.DigitalAccount)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.DigitalAccount) error {
	stored := *account
	r.rows[accountKey{account.UserID, account.AccountID}] = &stored
	return nil
}

func (r *fakeAccountRepo) ListByUser(_ context.Context, userID uint64) ([]entity.DigitalAccount, error) {
	var out []entity.DigitalAccount
	for key, account := range r.rows {
		if key.userID == userID {
			out = append(out, *account)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, userID uint64, accountID string, fields persistence.AccountUpdate) (*entity.DigitalAccount, error) {
	existing, ok := r.rows[accountKey{userID, accountID}]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if fields.Name != nil {
		existing.Name = *fields.Name
	}
	if fields.Balance != nil {
		existing.Balance = *fields.Balance
	}
	if fields.Type != nil {
		existing.Type = *fields.Type
	}
	copied := *existing
	return &copied, nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, userID uint64, accountID string) error {
	key := accountKey{userID, accountID}
	if _, ok := r.rows[key]; !ok {
		return errs.ErrNotFound
	}
	delete(r.rows, key)
	return nil
}

type fakeSequenceRepo struct {
	counters map[string]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: make(map[string]int64)}
}

func (r *fakeSequenceRepo) Next(_ context.Context, name string, start int64) (int64, error) {
	if _, ok := r.counters[name]; !ok {
		r.counters[name] = start
	}
	r.counters[name]++
	return r.counters[name], nil
}

type serviceFixture struct {
	svc      *Service
	balances *fakeBalanceRepo
	savings  *fakeSavingsRepo
	accounts *fakeAccountRepo
	clock    stubClock
}

func newFixture() *serviceFixture {
	clock := stubClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	balances := newFakeBalanceRepo()
	savings := newFakeSavingsRepo()
	accounts := newFakeAccountRepo()
	svc := NewService(
		balances,
		&fakeTransactionRepo{},
		&fakeExpenseRepo{},
		savings,
		accounts,
		newFakeSequenceRepo(),
		clock,
		nopLogger{},
	)
	return &serviceFixture{svc: svc, balances: balances, savings: savings, accounts: accounts, clock: clock}
}

var (
	alice = entity.Identity{UserID: 1001}
	bob   = entity.Identity{UserID: 1002}
)

func TestGetBalance(t *testing.T) {
	t.Run("First read creates a zeroed record", func(t *testing.T) {
		f := newFixture()

		balance, err := f.svc.GetBalance(context.Background(), alice)

		require.NoError(t, err)
		assert.Equal(t, alice.UserID, balance.UserID)
		assert.Zero(t, balance.TotalBalance)
		assert.Zero(t, balance.OfflineBalance)
		assert.Empty(t, balance.OnlineBalances)
	})

	t.Run("Second read returns the persisted record", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.PutBalance(context.Background(), alice, 250, []entity.OnlineBalance{
			{ID: "wallet", Name: "Wallet", Amount: 50, Type: "wallet"},
		})
		require.NoError(t, err)

		balance, err := f.svc.GetBalance(context.Background(), alice)
		require.NoError(t, err)
		assert.Equal(t, float64(300), balance.TotalBalance)
		assert.Len(t, balance.OnlineBalances, 1)
	})

	t.Run("Users do not share balance records", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.PutBalance(context.Background(), alice, 100, nil)
		require.NoError(t, err)

		balance, err := f.svc.GetBalance(context.Background(), bob)
		require.NoError(t, err)
		assert.Zero(t, balance.TotalBalance)
	})
}

func TestPutBalance(t *testing.T) {
	t.Run("Total is derived from the parts", func(t *testing.T) {
		f := newFixture()

		balance, err := f.svc.PutBalance(context.Background(), alice, 150.25, []entity.OnlineBalance{
			{ID: "wallet", Name: "Wallet", Amount: 49.75, Type: "wallet"},
			{ID: "bank", Name: "Bank", Amount: 300, Type: "bank"},
		})

		require.NoError(t, err)
		assert.Equal(t, float64(500), balance.TotalBalance)
	})

	t.Run("Nil online entries are stored as an empty list", func(t *testing.T) {
		f := newFixture()

		balance, err := f.svc.PutBalance(context.Background(), alice, 10, nil)

		require.NoError(t, err)
		assert.NotNil(t, balance.OnlineBalances)
		assert.Empty(t, balance.OnlineBalances)
	})

	t.Run("Replace is not a merge", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.PutBalance(context.Background(), alice, 0, []entity.OnlineBalance{
			{ID: "wallet", Name: "Wallet", Amount: 50, Type: "wallet"},
			{ID: "bank", Name: "Bank", Amount: 100, Type: "bank"},
		})
		require.NoError(t, err)

		balance, err := f.svc.PutBalance(context.Background(), alice, 0, []entity.OnlineBalance{
			{ID: "bank", Name: "Bank", Amount: 75, Type: "bank"},
		})
		require.NoError(t, err)

		assert.Len(t, balance.OnlineBalances, 1)
		assert.Equal(t, float64(75), balance.TotalBalance)
	})
}

func TestAppendTransaction(t *testing.T) {
	f := newFixture()

	tx, err := f.svc.AppendTransaction(context.Background(), alice, usecase.TransactionInput{
		Amount:    42.5,
		Remark:    "groceries",
		Medium:    "card",
		Timestamp: "2024-03-15T09:55:00Z",
	})

	require.NoError(t, err)
	assert.NotZero(t, tx.ID)
	assert.Equal(t, alice.UserID, tx.UserID)
	assert.Equal(t, f.clock.now, tx.Date)

	list, err := f.svc.ListTransactions(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	other, err := f.svc.ListTransactions(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAppendExpense(t *testing.T) {
	f := newFixture()

	expense, err := f.svc.AppendExpense(context.Background(), alice, usecase.ExpenseInput{
		Amount: 18,
		Remark: "lunch",
	})

	require.NoError(t, err)
	assert.NotZero(t, expense.ID)
	assert.Equal(t, alice.UserID, expense.UserID)

	list, err := f.svc.ListExpenses(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSavings(t *testing.T) {
	t.Run("Indices are allocated sequentially from one", func(t *testing.T) {
		f := newFixture()

		for i, name := range []string{"vacation", "laptop", "emergency"} {
			entry, err := f.svc.AppendSavings(context.Background(), alice, name, float64(100*(i+1)), "bank")
			require.NoError(t, err)
			assert.Equal(t, int64(i+1), entry.Index)
		}
	})

	t.Run("Index counters are per user", func(t *testing.T) {
		f := newFixture()

		aliceEntry, err := f.svc.AppendSavings(context.Background(), alice, "vacation", 100, "bank")
		require.NoError(t, err)
		bobEntry, err := f.svc.AppendSavings(context.Background(), bob, "bike", 200, "cash")
		require.NoError(t, err)

		assert.Equal(t, int64(1), aliceEntry.Index)
		assert.Equal(t, int64(1), bobEntry.Index)
	})

	t.Run("Delete leaves a gap, indices are never reused", func(t *testing.T) {
		f := newFixture()

		for _, name := range []string{"a", "b", "c"} {
			_, err := f.svc.AppendSavings(context.Background(), alice, name, 10, "bank")
			require.NoError(t, err)
		}

		require.NoError(t, f.svc.DeleteSavings(context.Background(), alice, 2))

		list, err := f.svc.ListSavings(context.Background(), alice)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, int64(1), list[0].Index)
		assert.Equal(t, int64(3), list[1].Index)

		// The next append continues past the deleted index
		entry, err := f.svc.AppendSavings(context.Background(), alice, "d", 10, "bank")
		require.NoError(t, err)
		assert.Equal(t, int64(4), entry.Index)
	})

	t.Run("Get by index", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.AppendSavings(context.Background(), alice, "vacation", 100, "bank")
		require.NoError(t, err)

		entry, err := f.svc.GetSavingsByIndex(context.Background(), alice, 1)
		require.NoError(t, err)
		assert.Equal(t, "vacation", entry.Name)

		_, err = f.svc.GetSavingsByIndex(context.Background(), alice, 99)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Update rewrites the mutable fields", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.AppendSavings(context.Background(), alice, "vacation", 100, "bank")
		require.NoError(t, err)

		updated, err := f.svc.UpdateSavings(context.Background(), alice, 1, "honeymoon", 250, "cash")
		require.NoError(t, err)
		assert.Equal(t, "honeymoon", updated.Name)
		assert.Equal(t, float64(250), updated.Amount)
		assert.Equal(t, "cash", updated.Medium)
		assert.Equal(t, int64(1), updated.Index)
	})

	t.Run("Update of a missing index fails", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.UpdateSavings(context.Background(), alice, 7, "x", 1, "bank")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Entries are invisible across users", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.AppendSavings(context.Background(), alice, "vacation", 100, "bank")
		require.NoError(t, err)

		_, err = f.svc.GetSavingsByIndex(context.Background(), bob, 1)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		err = f.svc.DeleteSavings(context.Background(), bob, 1)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestDigitalAccounts(t *testing.T) {
	t.Run("Create mints a unique external id", func(t *testing.T) {
		f := newFixture()

		first, err := f.svc.CreateAccount(context.Background(), alice, "Checking", 500, "bank")
		require.NoError(t, err)
		second, err := f.svc.CreateAccount(context.Background(), alice, "Savings", 1000, "bank")
		require.NoError(t, err)

		assert.NotEmpty(t, first.AccountID)
		assert.NotEmpty(t, second.AccountID)
		assert.NotEqual(t, first.AccountID, second.AccountID)
		assert.Equal(t, f.clock.now, first.CreatedAt)
	})

	t.Run("Partial update changes only the supplied fields", func(t *testing.T) {
		f := newFixture()

		account, err := f.svc.CreateAccount(context.Background(), alice, "Checking", 500, "bank")
		require.NoError(t, err)

		newBalance := 750.0
		updated, err := f.svc.UpdateAccount(context.Background(), alice, account.AccountID, persistence.AccountUpdate{
			Balance: &newBalance,
		})
		require.NoError(t, err)

		assert.Equal(t, "Checking", updated.Name)
		assert.Equal(t, "bank", updated.Type)
		assert.Equal(t, 750.0, updated.Balance)
	})

	t.Run("Update and delete are scoped to the owner", func(t *testing.T) {
		f := newFixture()

		account, err := f.svc.CreateAccount(context.Background(), alice, "Checking", 500, "bank")
		require.NoError(t, err)

		name := "hijacked"
		_, err = f.svc.UpdateAccount(context.Background(), bob, account.AccountID, persistence.AccountUpdate{Name: &name})
		assert.ErrorIs(t, err, errs.ErrNotFound)

		err = f.svc.DeleteAccount(context.Background(), bob, account.AccountID)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		require.NoError(t, f.svc.DeleteAccount(context.Background(), alice, account.AccountID))

		list, err := f.svc.ListAccounts(context.Background(), alice)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
