//go:build unit

// Package fake holds an in-memory UnitOfWork for usecase tests. Transactions
// are serialized and rolled back on error, which is enough to observe
// "nothing was written" without a database.
package fake

import (
	"context"
	"slices"
	"sync"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/infra"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Store struct {
	mu sync.Mutex

	turfs    map[uuid.UUID]*shared.TurfSnapshot
	bookings map[uuid.UUID]*booking.Booking
	order    []uuid.UUID
	payments map[uuid.UUID][]*payment.Payment
	seq      int64
	failures map[string]error

	// Locks records every turf-day lock key taken, in order.
	Locks []string
	// LockedForUpdate counts rows returned by FOR UPDATE day listings.
	LockedForUpdate int
	Commits         int
	Rollbacks       int
	// ReadOnlyScopes counts WithinReadOnly calls.
	ReadOnlyScopes int
}

func NewStore() *Store {
	return &Store{
		turfs:    map[uuid.UUID]*shared.TurfSnapshot{},
		bookings: map[uuid.UUID]*booking.Booking{},
		payments: map[uuid.UUID][]*payment.Payment{},
		failures: map[string]error{},
	}
}

func (s *Store) AddTurf(t *shared.TurfSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.turfs[t.ID] = &cp
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putBooking(cloneBooking(b))
}

func (s *Store) AddPayment(p *payment.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putPayment(p)
}

// FailOn makes the named repository method return err until cleared with nil.
func (s *Store) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, method)
		return
	}
	s.failures[method] = err
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil
	}
	return cloneBooking(b)
}

// Payments returns a booking's payments most recent first.
func (s *Store) Payments(bookingID uuid.UUID) []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listPayments(bookingID)
}

func (s *Store) CurrentPayment(bookingID uuid.UUID) *payment.Payment {
	return payment.Current(s.Payments(bookingID))
}

// HeldOverlaps reports whether two slot-holding bookings of one turf and day overlap.
func (s *Store) HeldOverlaps() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var held []*booking.Booking
	for _, id := range s.order {
		if b := s.bookings[id]; b.Status().HoldsSlot() {
			held = append(held, b)
		}
	}
	for i := range held {
		for j := i + 1; j < len(held); j++ {
			a, b := held[i], held[j]
			if a.TurfID() == b.TurfID() && a.Date().Equal(b.Date()) && booking.Overlaps(a.Interval(), b.Interval()) {
				return true
			}
		}
	}
	return false
}

// UnitOfWork

type UoW struct {
	store *Store
}

func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx, &tx{store: s}); err != nil {
		s.restore(snap)
		s.Rollbacks++
		return err
	}
	s.Commits++
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ReadOnlyScopes++
	snap := s.snapshot()
	err := fn(ctx, &tx{store: s})
	s.restore(snap)
	return err
}

func (u *UoW) CommandReads() shared.CommandReads {
	return reads{store: u.store}
}

type tx struct {
	store *Store
}

func (t *tx) Bookings() shared.BookingRepository { return bookings{store: t.store} }
func (t *tx) Payments() shared.PaymentRepository { return payments{store: t.store} }
func (t *tx) Reads() shared.CommandReads         { return reads{store: t.store} }
func (t *tx) DB() sqlc.DBTX                      { return nil }

// Reads

type reads struct {
	store *Store
}

func (r reads) TurfByID(_ context.Context, id uuid.UUID) (*shared.TurfSnapshot, error) {
	if err := r.store.failure("TurfByID"); err != nil {
		return nil, err
	}
	t, ok := r.store.turfs[id]
	if !ok {
		return nil, infra.WrapRepoErr("turf not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	cp := *t
	return &cp, nil
}

// Bookings

type bookings struct {
	store *Store
}

func (r bookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if err := r.store.failure("Bookings.Create"); err != nil {
		return uuid.Nil, err
	}
	r.store.putBooking(cloneBooking(b))
	return b.ID(), nil
}

func (r bookings) Get(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	if err := r.store.failure("Bookings.Get"); err != nil {
		return nil, err
	}
	return r.find(id)
}

func (r bookings) GetForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	if err := r.store.failure("Bookings.GetForUpdate"); err != nil {
		return nil, err
	}
	return r.find(id)
}

func (r bookings) find(id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (r bookings) ListForDay(_ context.Context, _ sqlc.DBTX, q shared.DayQuery) ([]*booking.Booking, error) {
	if err := r.store.failure("Bookings.ListForDay"); err != nil {
		return nil, err
	}
	day := booking.Date(q.Date)
	var out []*booking.Booking
	for _, id := range r.store.order {
		b := r.store.bookings[id]
		if b.TurfID() != q.TurfID || !b.Date().Equal(day) || !slices.Contains(q.Statuses, b.Status()) {
			continue
		}
		out = append(out, cloneBooking(b))
	}
	if q.ForUpdate {
		r.store.LockedForUpdate += len(out)
	}
	return out, nil
}

func (r bookings) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if err := r.store.failure("Bookings.UpdateStatus"); err != nil {
		return err
	}
	cur, ok := r.store.bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.store.bookings[b.ID()] = booking.ReconstructBooking(
		cur.ID(), cur.TurfID(), cur.OrganizerID(), cur.Date(), cur.Interval(), cur.Audience(), cur.Extras(),
		cur.TotalCost(), b.Status(), b.Reason(), cur.PaymentFlag(), cur.CreatedAt(), b.UpdatedAt(),
	)
	return nil
}

func (r bookings) UpdatePaymentFlag(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if err := r.store.failure("Bookings.UpdatePaymentFlag"); err != nil {
		return err
	}
	cur, ok := r.store.bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.store.bookings[b.ID()] = booking.ReconstructBooking(
		cur.ID(), cur.TurfID(), cur.OrganizerID(), cur.Date(), cur.Interval(), cur.Audience(), cur.Extras(),
		cur.TotalCost(), cur.Status(), cur.Reason(), b.PaymentFlag(), cur.CreatedAt(), b.UpdatedAt(),
	)
	return nil
}

func (r bookings) LockTurfDay(_ context.Context, _ sqlc.DBTX, turfID uuid.UUID, date time.Time) error {
	if err := r.store.failure("Bookings.LockTurfDay"); err != nil {
		return err
	}
	r.store.Locks = append(r.store.Locks, turfID.String()+"|"+booking.Date(date).Format(time.DateOnly))
	return nil
}

// Payments

type payments struct {
	store *Store
}

func (r payments) ListByBooking(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, _ bool) ([]*payment.Payment, error) {
	if err := r.store.failure("Payments.ListByBooking"); err != nil {
		return nil, err
	}
	return r.store.listPayments(bookingID), nil
}

func (r payments) Create(_ context.Context, _ sqlc.DBTX, p *payment.Payment) (uuid.UUID, error) {
	if err := r.store.failure("Payments.Create"); err != nil {
		return uuid.Nil, err
	}
	r.store.putPayment(p)
	return p.ID(), nil
}

func (r payments) UpdateStatus(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	if err := r.store.failure("Payments.UpdateStatus"); err != nil {
		return err
	}
	rows := r.store.payments[p.BookingID()]
	for i, cur := range rows {
		if cur.ID() == p.ID() {
			rows[i] = payment.Reconstruct(cur.ID(), cur.BookingID(), cur.Seq(), cur.Method(), p.Status(),
				p.TransactionRef(), cur.AmountCents(), cur.CreatedAt(), p.UpdatedAt())
			return nil
		}
	}
	return infra.WrapRepoErr("payment row missing on update", nil, infra.KindDBFailure)
}

// internals, called with mu held

type snapshot struct {
	bookings map[uuid.UUID]*booking.Booking
	order    []uuid.UUID
	payments map[uuid.UUID][]*payment.Payment
	seq      int64
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		bookings: make(map[uuid.UUID]*booking.Booking, len(s.bookings)),
		order:    slices.Clone(s.order),
		payments: make(map[uuid.UUID][]*payment.Payment, len(s.payments)),
		seq:      s.seq,
	}
	for id, b := range s.bookings {
		snap.bookings[id] = b
	}
	for id, ps := range s.payments {
		snap.payments[id] = slices.Clone(ps)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.bookings = snap.bookings
	s.order = snap.order
	s.payments = snap.payments
	s.seq = snap.seq
}

func (s *Store) failure(method string) error {
	return s.failures[method]
}

func (s *Store) putBooking(b *booking.Booking) {
	if _, ok := s.bookings[b.ID()]; !ok {
		s.order = append(s.order, b.ID())
	}
	s.bookings[b.ID()] = b
}

func (s *Store) putPayment(p *payment.Payment) {
	s.seq++
	seq := p.Seq()
	if seq == 0 {
		seq = s.seq
	}
	s.payments[p.BookingID()] = append(s.payments[p.BookingID()], payment.Reconstruct(
		p.ID(), p.BookingID(), seq, p.Method(), p.Status(), p.TransactionRef(), p.AmountCents(), p.CreatedAt(), p.UpdatedAt(),
	))
}

func (s *Store) listPayments(bookingID uuid.UUID) []*payment.Payment {
	rows := s.payments[bookingID]
	out := make([]*payment.Payment, 0, len(rows))
	for _, p := range rows {
		out = append(out, clonePayment(p))
	}
	slices.SortFunc(out, func(a, b *payment.Payment) int {
		if c := b.UpdatedAt().Compare(a.UpdatedAt()); c != 0 {
			return c
		}
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		switch {
		case a.Seq() > b.Seq():
			return -1
		case a.Seq() < b.Seq():
			return 1
		default:
			return 0
		}
	})
	return out
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(), b.TurfID(), b.OrganizerID(), b.Date(), b.Interval(), b.Audience(), slices.Clone(b.Extras()),
		b.TotalCost(), b.Status(), b.Reason(), b.PaymentFlag(), b.CreatedAt(), b.UpdatedAt(),
	)
}

func clonePayment(p *payment.Payment) *payment.Payment {
	return payment.Reconstruct(
		p.ID(), p.BookingID(), p.Seq(), p.Method(), p.Status(), p.TransactionRef(), p.AmountCents(), p.CreatedAt(), p.UpdatedAt(),
	)
}
