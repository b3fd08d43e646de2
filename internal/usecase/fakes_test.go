package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetricsWithRegistry("test", prometheus.NewRegistry())
}

var testLogger = logger.NewNop()

// fakeCollection is an in-memory CollectionRepository
type fakeCollection[T any] struct {
	mu      sync.Mutex
	docs    map[string]*T
	order   []string
	nextID  int
	updates map[string]map[string]interface{}

	listErr   error
	createErr error
	updateErr error
	filters   []map[string]interface{}
}

func newFakeCollection[T any](docs ...T) *fakeCollection[T] {
	c := &fakeCollection[T]{
		docs:    make(map[string]*T),
		updates: make(map[string]map[string]interface{}),
	}
	for i := range docs {
		_, _ = c.Create(context.Background(), &docs[i])
	}
	return c
}

func (c *fakeCollection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listErr != nil {
		return nil, c.listErr
	}
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.docs[id])
	}
	return out, nil
}

func (c *fakeCollection[T]) Find(ctx context.Context, filter map[string]interface{}) ([]T, error) {
	c.mu.Lock()
	c.filters = append(c.filters, filter)
	c.mu.Unlock()
	return c.List(ctx)
}

func (c *fakeCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

func (c *fakeCollection[T]) Create(ctx context.Context, doc *T) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.createErr != nil {
		return "", c.createErr
	}
	c.nextID++
	id := fmt.Sprintf("doc-%d", c.nextID)
	if d, ok := any(doc).(entity.Document); ok {
		if d.DocumentID() != "" {
			id = d.DocumentID()
		}
		d.SetDocumentID(id)
		d.Touch(time.Now(), true)
	}
	cp := *doc
	c.docs[id] = &cp
	c.order = append(c.order, id)
	return id, nil
}

func (c *fakeCollection[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.updateErr != nil {
		return c.updateErr
	}
	if _, ok := c.docs[id]; !ok {
		return repository.ErrNotFound
	}
	if c.updates[id] == nil {
		c.updates[id] = map[string]interface{}{}
	}
	for k, v := range fields {
		c.updates[id][k] = v
	}
	return nil
}

func (c *fakeCollection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(c.docs, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *fakeCollection[T]) Count(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.docs)), nil
}

func (c *fakeCollection[T]) updated(id string) map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updates[id]
}

type statusUpdate struct {
	id, status, paymentStatus string
}

// fakeBookingRepo adds the booking-specific queries
type fakeBookingRepo struct {
	*fakeCollection[entity.BookingRecord]

	statusMu      sync.Mutex
	statusUpdates []statusUpdate
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{fakeCollection: newFakeCollection[entity.BookingRecord]()}
}

func (r *fakeBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.BookingRecord, error) {
	records, _ := r.List(ctx)
	for _, b := range records {
		if b.Reference == reference {
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status, paymentStatus string) error {
	r.statusMu.Lock()
	r.statusUpdates = append(r.statusUpdates, statusUpdate{id, status, paymentStatus})
	r.statusMu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	if status != "" {
		doc.Status = status
	}
	if paymentStatus != "" {
		doc.Payment.Status = paymentStatus
	}
	return nil
}

func (r *fakeBookingRepo) only(t interface{ Fatalf(string, ...interface{}) }) entity.BookingRecord {
	records, _ := r.List(context.Background())
	if len(records) != 1 {
		t.Fatalf("expected exactly one booking, got %d", len(records))
	}
	return records[0]
}

type fakeGateway struct {
	fn    func(req entity.CheckoutRequest) (string, error)
	calls []entity.CheckoutRequest
}

func (g *fakeGateway) CreateSession(ctx context.Context, req entity.CheckoutRequest) (string, error) {
	g.calls = append(g.calls, req)
	return g.fn(req)
}

type fakeAwaiter struct {
	fn func(ctx context.Context, sessionID string) (*entity.CheckoutNotification, error)
}

func (a *fakeAwaiter) Await(ctx context.Context, sessionID string) (*entity.CheckoutNotification, error) {
	return a.fn(ctx, sessionID)
}

type fakeSubmitter struct {
	fn       func(req SubmitRequest) (*SubmitResult, error)
	requests []SubmitRequest
}

func (s *fakeSubmitter) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	s.requests = append(s.requests, req)
	return s.fn(req)
}

type fakePublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *fakePublisher) Publish(ctx context.Context, routingKey string, event entity.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return p.err
}

func (p *fakePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

type fakeEmailRepo struct {
	mu     sync.Mutex
	logs   []*entity.EmailLog
	sent   map[string]string
	failed map[string]string
	next   int
}

func newFakeEmailRepo() *fakeEmailRepo {
	return &fakeEmailRepo{sent: map[string]string{}, failed: map[string]string{}}
}

func (r *fakeEmailRepo) Save(ctx context.Context, log *entity.EmailLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	log.ID = fmt.Sprintf("email-%d", r.next)
	log.Status = entity.StatusPending
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeEmailRepo) MarkSent(ctx context.Context, id, providerID string, sentAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent[id] = providerID
	return nil
}

func (r *fakeEmailRepo) MarkFailed(ctx context.Context, id, errorDetail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[id] = errorDetail
	return nil
}

func (r *fakeEmailRepo) FindByStatus(ctx context.Context, status string, limit int) ([]*entity.EmailLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.EmailLog
	for _, l := range r.logs {
		if l.Status == status && len(out) < limit {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeSender struct {
	mu   sync.Mutex
	sent []entity.EmailMessage
	err  error
}

func (s *fakeSender) SendEmail(ctx context.Context, msg entity.EmailMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, msg)
	return fmt.Sprintf("gmail-%d", len(s.sent)), nil
}

func (s *fakeSender) messages() []entity.EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.EmailMessage(nil), s.sent...)
}

// stubTemplate renders a fixed message per kind
type stubTemplate struct {
	kind string
	err  error
}

func (t stubTemplate) Kind() string { return t.kind }

func (t stubTemplate) Render(data interface{}) (entity.EmailMessage, error) {
	if t.err != nil {
		return entity.EmailMessage{}, t.err
	}
	msg := entity.EmailMessage{Subject: t.kind, HTML: "<p>" + t.kind + "</p>"}
	switch d := data.(type) {
	case OwnerDecisionEmail:
		msg.To = d.Email
		msg.Subject = string(d.Status)
	case BookingConfirmationEmail:
		msg.To = d.Booking.Customer.Email
		msg.Subject = d.Booking.Reference
	}
	return msg, nil
}

type mapRegistry map[string]EmailTemplate

func (r mapRegistry) Register(t EmailTemplate) { r[t.Kind()] = t }
func (r mapRegistry) Get(kind string) EmailTemplate { return r[kind] }

func newStubRegistry() mapRegistry {
	return mapRegistry{
		EmailBookingConfirmation: stubTemplate{kind: EmailBookingConfirmation},
		EmailOwnerDecision:       stubTemplate{kind: EmailOwnerDecision},
	}
}

type fakeOwnerRepo struct {
	mu      sync.Mutex
	owners  map[string]*entity.OwnerSubmission
	updates map[string]map[string]interface{}
	listErr error
	counts  map[entity.VerificationStatus]int
}

func newFakeOwnerRepo(owners ...entity.OwnerSubmission) *fakeOwnerRepo {
	r := &fakeOwnerRepo{
		owners:  map[string]*entity.OwnerSubmission{},
		updates: map[string]map[string]interface{}{},
	}
	for i := range owners {
		o := owners[i]
		r.owners[o.ID] = &o
	}
	return r
}

func (r *fakeOwnerRepo) List(ctx context.Context, filter entity.OwnerFilter) ([]entity.OwnerSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []entity.OwnerSubmission
	for _, o := range r.owners {
		if filter.Status == "" || o.VerificationStatus == filter.Status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOwnerRepo) Get(ctx context.Context, id string) (*entity.OwnerSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.owners[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOwnerRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates[id] = fields
	return nil
}

func (r *fakeOwnerRepo) CountByStatus(ctx context.Context) (map[entity.VerificationStatus]int, error) {
	return r.counts, nil
}

type fakeDocumentRepo struct {
	docs    map[string]*entity.OwnerDocument
	updates map[string]map[string]interface{}
}

func newFakeDocumentRepo(docs ...entity.OwnerDocument) *fakeDocumentRepo {
	r := &fakeDocumentRepo{
		docs:    map[string]*entity.OwnerDocument{},
		updates: map[string]map[string]interface{}{},
	}
	for i := range docs {
		d := docs[i]
		r.docs[d.ID] = &d
	}
	return r
}

func (r *fakeDocumentRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.OwnerDocument, error) {
	var out []entity.OwnerDocument
	for _, d := range r.docs {
		if d.OwnerID == ownerID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Get(ctx context.Context, id string) (*entity.OwnerDocument, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	r.updates[id] = fields
	return nil
}

// fakePageRepo stores page documents as JSON
type fakePageRepo struct {
	pages   map[string][]byte
	loadErr error
	saved   []string
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: map[string][]byte{}}
}

func (r *fakePageRepo) Load(ctx context.Context, id string, out interface{}) (bool, error) {
	if r.loadErr != nil {
		return false, r.loadErr
	}
	raw, ok := r.pages[id]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (r *fakePageRepo) Save(ctx context.Context, id string, content interface{}) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return err
	}
	r.pages[id] = raw
	r.saved = append(r.saved, id)
	return nil
}

type fakeDestinationRepo struct {
	stored map[string]*entity.DestinationContent
	err    error
}

func (r *fakeDestinationRepo) Get(ctx context.Context, slug string) (*entity.DestinationContent, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.stored[slug], nil
}

func (r *fakeDestinationRepo) Save(ctx context.Context, content *entity.DestinationContent) error {
	if r.stored == nil {
		r.stored = map[string]*entity.DestinationContent{}
	}
	r.stored[content.Slug] = content
	return nil
}

type fakeCatalog struct {
	tour *entity.Tour
	err  error
}

func (c *fakeCatalog) GetByTourID(ctx context.Context, tourID string) (*entity.Tour, error) {
	return c.tour, c.err
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items map[string]*entity.CheckoutNotification
	reads int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{items: map[string]*entity.CheckoutNotification{}}
}

func (r *fakeNotificationRepo) Upsert(ctx context.Context, n *entity.CheckoutNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.items[n.SessionID] = &cp
	return nil
}

func (r *fakeNotificationRepo) FindBySessionID(ctx context.Context, sessionID string) (*entity.CheckoutNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	n, ok := r.items[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

type fakeStorage struct {
	paths []string
	body  []byte
	err   error
}

func (s *fakeStorage) Upload(ctx context.Context, path, contentType string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.paths = append(s.paths, path)
	s.body, _ = io.ReadAll(r)
	return "https://storage.googleapis.com/bucket/" + path, nil
}
