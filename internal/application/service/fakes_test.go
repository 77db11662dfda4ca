package service

import (
	"context"
	"strings"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They reproduce the contract of the gorm
// implementations: owner scoping, nil on not-found, and a recompute inside
// every composite mutation.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeBusinessRepo struct {
	profiles map[uuid.UUID]*entity.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{profiles: map[uuid.UUID]*entity.Business{}}
}

func (r *fakeBusinessRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	return r.profiles[ownerID], nil
}

func (r *fakeBusinessRepo) Upsert(_ context.Context, business *entity.Business) error {
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	r.profiles[business.OwnerID] = business
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = time.Now()
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Customer, error) {
	c := r.customers[id]
	if c == nil || c.OwnerID != ownerID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, ownerID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var all []entity.Customer
	for _, c := range r.customers {
		if c.OwnerID != ownerID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		all = append(all, *c)
	}
	total := int64(len(all))
	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeCustomerRepo) ListWithCursor(_ context.Context, ownerID uuid.UUID, params *pagination.CursorParams, _ string) ([]entity.Customer, error) {
	var all []entity.Customer
	for _, c := range r.customers {
		if c.OwnerID == ownerID {
			all = append(all, *c)
		}
	}
	if len(all) > params.Limit+1 {
		all = all[:params.Limit+1]
	}
	return all, nil
}

type fakeAccountRepo struct {
	accounts  map[uuid.UUID]*entity.Account
	customers *fakeCustomerRepo
}

func newFakeAccountRepo(customers *fakeCustomerRepo) *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts:  map[uuid.UUID]*entity.Account{},
		customers: customers,
	}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account, items []entity.LineItem) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].AccountID = account.ID
	}
	account.Items = items
	account.Recompute(time.Now())
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) get(ownerID, id uuid.UUID, includeDeleted bool) *entity.Account {
	a := r.accounts[id]
	if a == nil || a.OwnerID != ownerID {
		return nil
	}
	if !includeDeleted && a.IsDeleted {
		return nil
	}
	if a.Customer == nil {
		a.Customer = r.customers.customers[a.CustomerID]
	}
	return a
}

func (r *fakeAccountRepo) GetByID(_ context.Context, ownerID, id uuid.UUID, includeDeleted bool) (*entity.Account, error) {
	return r.get(ownerID, id, includeDeleted), nil
}

func (r *fakeAccountRepo) GetWithChildren(_ context.Context, ownerID, id uuid.UUID, includeDeleted bool) (*entity.Account, error) {
	return r.get(ownerID, id, includeDeleted), nil
}

func (r *fakeAccountRepo) List(_ context.Context, ownerID uuid.UUID, status *enum.AccountStatus, search string) ([]entity.Account, error) {
	var out []entity.Account
	for _, a := range r.accounts {
		if a.OwnerID != ownerID || a.IsDeleted {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		if search != "" && (a.Customer == nil || !strings.Contains(strings.ToLower(a.Customer.Name), strings.ToLower(search))) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAccountRepo) ListDeleted(_ context.Context, ownerID uuid.UUID, _ string) ([]entity.Account, error) {
	var out []entity.Account
	for _, a := range r.accounts {
		if a.OwnerID == ownerID && a.IsDeleted {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) AddItem(_ context.Context, account *entity.Account, item *entity.LineItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.AccountID = account.ID
	stored := r.accounts[account.ID]
	stored.Items = append(stored.Items, *item)
	stored.Recompute(time.Now())
	*account = *stored
	return nil
}

func (r *fakeAccountRepo) RemoveItem(_ context.Context, account *entity.Account, itemID uuid.UUID) error {
	stored := r.accounts[account.ID]
	for i, item := range stored.Items {
		if item.ID == itemID {
			stored.Items = append(stored.Items[:i], stored.Items[i+1:]...)
			stored.Recompute(time.Now())
			*account = *stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) UpdateDeletion(_ context.Context, account *entity.Account) error {
	stored := r.accounts[account.ID]
	stored.IsDeleted = account.IsDeleted
	stored.DeletedAt = account.DeletedAt
	stored.DeletedReason = account.DeletedReason
	stored.DeletedByID = account.DeletedByID
	return nil
}

type fakePaymentRepo struct {
	accounts *fakeAccountRepo
}

func newFakePaymentRepo(accounts *fakeAccountRepo) *fakePaymentRepo {
	return &fakePaymentRepo{accounts: accounts}
}

func (r *fakePaymentRepo) Create(_ context.Context, account *entity.Account, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if payment.EffectiveAt.IsZero() {
		payment.EffectiveAt = time.Now()
	}
	payment.AccountID = account.ID
	stored := r.accounts.accounts[account.ID]
	stored.Payments = append(stored.Payments, *payment)
	stored.Recompute(time.Now())
	*account = *stored
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, account *entity.Account, paymentID uuid.UUID) error {
	stored := r.accounts.accounts[account.ID]
	for i, p := range stored.Payments {
		if p.ID == paymentID {
			stored.Payments = append(stored.Payments[:i], stored.Payments[i+1:]...)
			stored.Recompute(time.Now())
			*account = *stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePaymentRepo) GetByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Payment, error) {
	for _, a := range r.accounts.accounts {
		if a.OwnerID != ownerID {
			continue
		}
		for i := range a.Payments {
			if a.Payments[i].ID == id {
				p := a.Payments[i]
				p.Account = *a
				return &p, nil
			}
		}
	}
	return nil, nil
}

type fakeAuditRepo struct {
	events  []entity.AuditEvent
	failErr error
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (r *fakeAuditRepo) Create(_ context.Context, event *entity.AuditEvent) error {
	if r.failErr != nil {
		return r.failErr
	}
	event.ID = uint(len(r.events) + 1)
	event.CreatedAt = time.Now()
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, actorID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.AuditEvent, int64, error) {
	var out []entity.AuditEvent
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if e.ActorID == nil || *e.ActorID != actorID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Description), strings.ToLower(search)) {
			continue
		}
		out = append(out, e)
	}
	total := int64(len(out))
	start := params.Offset()
	if start > len(out) {
		start = len(out)
	}
	end := start + params.PerPage
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}
