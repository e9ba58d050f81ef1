package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/and161185/officehub/internal/audit"
	"github.com/and161185/officehub/internal/content"
	"github.com/and161185/officehub/internal/errs"
	"github.com/and161185/officehub/internal/fanout"
	"github.com/and161185/officehub/internal/model"
	"github.com/and161185/officehub/internal/repository"
	"go.uber.org/zap/zaptest"
)

// memDB is an in-memory backing store shared by the fake repositories.
type memDB struct {
	mu       sync.Mutex
	seq      int64
	clock    time.Time
	users    map[int64]model.User
	depts    map[int64]model.Department
	members  map[int64][]int64
	files    map[int64]model.File
	grants   []model.Grant
	messages map[int64]model.Message
	notes    []model.Notification
	activity []model.ActivityEntry

	capLookups  int
	notesErr    error
	fileErr     error
	activityErr error
}

func newMemDB() *memDB {
	return &memDB{
		clock:    time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		users:    map[int64]model.User{},
		depts:    map[int64]model.Department{},
		members:  map[int64][]int64{},
		files:    map[int64]model.File{},
		messages: map[int64]model.Message{},
	}
}

func (db *memDB) next() (int64, time.Time) {
	db.seq++
	db.clock = db.clock.Add(time.Second)
	return db.seq, db.clock
}

type (
	memUsers    struct{ db *memDB }
	memDepts    struct{ db *memDB }
	memFiles    struct{ db *memDB }
	memGrants   struct{ db *memDB }
	memMessages struct{ db *memDB }
	memNotes    struct{ db *memDB }
	memActivity struct{ db *memDB }
)

var (
	_ repository.UserRepository         = memUsers{}
	_ repository.DepartmentRepository   = memDepts{}
	_ repository.FileRepository         = memFiles{}
	_ repository.GrantRepository        = memGrants{}
	_ repository.MessageRepository      = memMessages{}
	_ repository.NotificationRepository = memNotes{}
	_ repository.ActivityRepository     = memActivity{}
)

func (r memUsers) Create(_ context.Context, u *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u.ID, u.CreatedAt = r.db.next()
	r.db.users[u.ID] = *u
	return nil
}

func (r memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

func (r memUsers) ExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []int64
	for _, id := range ids {
		if _, ok := r.db.users[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r memUsers) ListActive(context.Context) ([]model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.User
	for _, u := range r.db.users {
		if u.Active {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memDepts) GetByID(_ context.Context, id int64) (*model.Department, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	d, ok := r.db.depts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &d, nil
}

func (r memDepts) MemberIDs(_ context.Context, id int64) ([]int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]int64(nil), r.db.members[id]...), nil
}

func (r memDepts) IsMember(_ context.Context, deptID, userID int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, id := range r.db.members[deptID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r memDepts) DepartmentIDsOf(_ context.Context, userID int64) ([]int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []int64
	for d, ms := range r.db.members {
		for _, id := range ms {
			if id == userID {
				out = append(out, d)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r memFiles) Create(_ context.Context, f *model.File) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.fileErr != nil {
		return r.db.fileErr
	}
	if _, ok := r.db.users[f.OwnerID]; !ok {
		return errs.ErrNotFound
	}
	f.ID, f.CreatedAt = r.db.next()
	f.UpdatedAt = f.CreatedAt
	r.db.files[f.ID] = *f
	return nil
}

func (r memFiles) GetByID(_ context.Context, id int64) (*model.File, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	f, ok := r.db.files[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &f, nil
}

func (r memFiles) TogglePublic(_ context.Context, id int64) (*model.File, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	f, ok := r.db.files[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	f.Public = !f.Public
	r.db.files[id] = f
	return &f, nil
}

func (r memFiles) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.files[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.db.files, id)
	kept := r.db.grants[:0]
	for _, g := range r.db.grants {
		if g.FileID != id {
			kept = append(kept, g)
		}
	}
	r.db.grants = kept
	return nil
}

func (r memFiles) ListAccessible(_ context.Context, userID int64, q model.FileQuery) ([]model.File, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	shared := map[int64]bool{}
	for _, g := range r.db.grants {
		if g.GranteeID == userID {
			shared[g.FileID] = true
		}
	}
	var out []model.File
	for _, f := range r.db.files {
		if f.OwnerID != userID && !f.Public && !shared[f.ID] {
			continue
		}
		if q.Folder != "" && f.FolderPath != q.Folder {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(f.OriginalName), strings.ToLower(q.Search)) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memFiles) FoldersOf(_ context.Context, ownerID int64) ([]string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, f := range r.db.files {
		if f.OwnerID == ownerID && !seen[f.FolderPath] {
			seen[f.FolderPath] = true
			out = append(out, f.FolderPath)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r memGrants) UpsertBatch(_ context.Context, fileID, grantedBy int64, ids []int64, c model.Capability) ([]model.Grant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.files[fileID]; !ok {
		return nil, errs.ErrNotFound
	}
	for _, id := range ids {
		if _, ok := r.db.users[id]; !ok {
			return nil, errs.ErrNotFound
		}
	}
	out := make([]model.Grant, 0, len(ids))
	for _, uid := range ids {
		_, now := r.db.next()
		found := false
		for i := range r.db.grants {
			g := &r.db.grants[i]
			if g.FileID == fileID && g.GranteeID == uid && g.Capability == c {
				g.GrantedBy, g.CreatedAt = grantedBy, now
				out = append(out, *g)
				found = true
				break
			}
		}
		if !found {
			g := model.Grant{ID: r.db.seq, FileID: fileID, GranteeID: uid, Capability: c, GrantedBy: grantedBy, CreatedAt: now}
			r.db.grants = append(r.db.grants, g)
			out = append(out, g)
		}
	}
	return out, nil
}

func (r memGrants) DeleteForGrantee(_ context.Context, fileID, granteeID int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	kept := r.db.grants[:0]
	for _, g := range r.db.grants {
		if g.FileID == fileID && g.GranteeID == granteeID {
			n++
			continue
		}
		kept = append(kept, g)
	}
	r.db.grants = kept
	return n, nil
}

func (r memGrants) ListByFile(_ context.Context, fileID int64) ([]model.Grant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Grant
	for _, g := range r.db.grants {
		if g.FileID == fileID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r memGrants) CapabilitiesFor(_ context.Context, fileID, userID int64) ([]model.Capability, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.capLookups++
	var out []model.Capability
	for _, g := range r.db.grants {
		if g.FileID == fileID && g.GranteeID == userID {
			out = append(out, g.Capability)
		}
	}
	return out, nil
}

func (r memMessages) Create(_ context.Context, m *model.Message) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m.ID, m.CreatedAt = r.db.next()
	r.db.messages[m.ID] = *m
	return nil
}

func (r memMessages) GetByID(_ context.Context, id int64) (*model.Message, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m, ok := r.db.messages[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &m, nil
}

func (r memMessages) filter(keep func(model.Message) bool) []model.Message {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Message
	for _, m := range r.db.messages {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r memMessages) ListDirect(_ context.Context, userID int64, _ model.Page) ([]model.Message, error) {
	return r.filter(func(m model.Message) bool {
		return m.Audience.Kind() == model.KindDirect && (m.SenderID == userID || m.RecipientID() == userID)
	}), nil
}

func (r memMessages) ListByDepartments(_ context.Context, ids []int64, _ model.Page) ([]model.Message, error) {
	return r.filter(func(m model.Message) bool {
		for _, id := range ids {
			if m.DepartmentID() == id {
				return true
			}
		}
		return false
	}), nil
}

func (r memMessages) ListAnnouncements(_ context.Context, _ model.Page) ([]model.Message, error) {
	return r.filter(func(m model.Message) bool { return m.Audience.Kind() == model.KindAnnouncement }), nil
}

func (r memMessages) MarkRead(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m, ok := r.db.messages[id]
	if !ok {
		return errs.ErrNotFound
	}
	m.Read = true
	r.db.messages[id] = m
	return nil
}

func (r memMessages) CountUnreadDirect(_ context.Context, userID int64) (int64, error) {
	unread := r.filter(func(m model.Message) bool { return m.RecipientID() == userID && !m.Read })
	return int64(len(unread)), nil
}

func (r memNotes) CreateBatch(_ context.Context, ns []model.Notification) ([]model.Notification, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.notesErr != nil {
		return nil, r.db.notesErr
	}
	out := make([]model.Notification, 0, len(ns))
	for _, n := range ns {
		n.ID, n.CreatedAt = r.db.next()
		r.db.notes = append(r.db.notes, n)
		out = append(out, n)
	}
	return out, nil
}

func (r memNotes) ListByUser(_ context.Context, userID int64, unreadOnly bool, _ model.Page) ([]model.Notification, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Notification
	for i := len(r.db.notes) - 1; i >= 0; i-- {
		n := r.db.notes[i]
		if n.UserID == userID && (!unreadOnly || !n.Read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r memNotes) FindUnreadByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return r.ListByUser(ctx, userID, true, model.Page{})
}

func (r memNotes) CountUnread(ctx context.Context, userID int64) (int64, error) {
	ns, _ := r.FindUnreadByUser(ctx, userID)
	return int64(len(ns)), nil
}

func (r memNotes) MarkRead(_ context.Context, id, userID int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.notes {
		if r.db.notes[i].ID == id && r.db.notes[i].UserID == userID {
			r.db.notes[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (r memNotes) OwnerOf(_ context.Context, id int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, n := range r.db.notes {
		if n.ID == id {
			return n.UserID, nil
		}
	}
	return 0, errs.ErrNotFound
}

func (r memNotes) MarkAllRead(_ context.Context, userID int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for i := range r.db.notes {
		if r.db.notes[i].UserID == userID && !r.db.notes[i].Read {
			r.db.notes[i].Read = true
			n++
		}
	}
	return n, nil
}

func (r memActivity) Append(_ context.Context, e model.ActivityEntry) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.activityErr != nil {
		return r.db.activityErr
	}
	e.ID, e.CreatedAt = r.db.next()
	r.db.activity = append(r.db.activity, e)
	return nil
}

func (r memActivity) List(_ context.Context, userID int64, _ model.Page) ([]model.ActivityEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.ActivityEntry
	for i := len(r.db.activity) - 1; i >= 0; i-- {
		if userID == 0 || r.db.activity[i].UserID == userID {
			out = append(out, r.db.activity[i])
		}
	}
	return out, nil
}

// published is one captured Publish call.
type published struct {
	Target  fanout.Target
	Kind    fanout.Kind
	Payload any
}

type recordingBus struct {
	mu     sync.Mutex
	events []published
}

var _ Publisher = (*recordingBus)(nil)

func (b *recordingBus) Publish(target fanout.Target, kind fanout.Kind, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, published{Target: target, Kind: kind, Payload: payload})
}

func (b *recordingBus) count(kind fanout.Kind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type memContent struct {
	mu      sync.Mutex
	objects map[string][]byte
	seq     int
	putErr  error
}

var _ content.Store = (*memContent)(nil)

func (m *memContent) Put(_ context.Context, r io.Reader) (content.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return content.Object{}, m.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return content.Object{}, err
	}
	m.seq++
	h := fmt.Sprintf("obj-%d", m.seq)
	m.objects[h] = b
	return content.Object{Handle: h, Size: int64(len(b)), Checksum: "sum"}, nil
}

func (m *memContent) Get(_ context.Context, h string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[h]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memContent) Delete(_ context.Context, h string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, h)
	return nil
}

// Directory used by every service test:
//
//	1 alice    EMPLOYEE  engineering
//	2 bob      EMPLOYEE  engineering
//	3 carol    EMPLOYEE  engineering
//	4 dana     MANAGER   sales
//	5 eve      EMPLOYEE  inactive
//	6 root     ADMIN
const (
	alice int64 = iota + 1
	bob
	carol
	dana
	eve
	root
)

const (
	engineering int64 = 70
	sales       int64 = 80
)

type fixture struct {
	db       *memDB
	bus      *recordingBus
	store    *memContent
	notes    *NotificationServiceImpl
	shares   *ShareServiceImpl
	messages *MessageServiceImpl
	files    *FileServiceImpl
	activity *ActivityServiceImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newMemDB()
	add := func(id int64, name string, role model.Role, active bool) {
		db.users[id] = model.User{ID: id, Username: name, FullName: strings.ToUpper(name[:1]) + name[1:], Role: role, Active: active}
	}
	add(alice, "alice", model.RoleEmployee, true)
	add(bob, "bob", model.RoleEmployee, true)
	add(carol, "carol", model.RoleEmployee, true)
	add(dana, "dana", model.RoleManager, true)
	add(eve, "eve", model.RoleEmployee, false)
	add(root, "root", model.RoleAdmin, true)
	db.seq = 100
	db.depts[engineering] = model.Department{ID: engineering, Name: "Engineering"}
	db.depts[sales] = model.Department{ID: sales, Name: "Sales"}
	db.members[engineering] = []int64{alice, bob, carol}
	db.members[sales] = []int64{dana}

	log := zaptest.NewLogger(t)
	bus := &recordingBus{}
	store := &memContent{objects: map[string][]byte{}}
	rec := audit.NewRecorder(memActivity{db}, log)
	notes := NewNotificationService(memNotes{db}, bus)
	return &fixture{
		db:       db,
		bus:      bus,
		store:    store,
		notes:    notes,
		shares:   NewShareService(memFiles{db}, memGrants{db}, memUsers{db}, notes, rec, log),
		messages: NewMessageService(memMessages{db}, memUsers{db}, memDepts{db}, notes, bus, rec, log),
		files:    NewFileService(memFiles{db}, memGrants{db}, store, rec, log),
		activity: NewActivityService(memActivity{db}),
	}
}

func as(id int64, role model.Role) model.Principal { return model.Principal{UserID: id, Role: role} }

func employee(id int64) model.Principal { return as(id, model.RoleEmployee) }

// putFile stores a file owned by owner directly in the fake tables.
func (f *fixture) putFile(owner int64, name string, public bool) model.File {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	id, now := f.db.next()
	file := model.File{ID: id, Filename: name, OriginalName: name, Handle: "h-" + name, OwnerID: owner,
		FolderPath: "/", Public: public, CreatedAt: now, UpdatedAt: now}
	f.db.files[id] = file
	return file
}

func (f *fixture) grantRows(fileID int64) []model.Grant {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var out []model.Grant
	for _, g := range f.db.grants {
		if g.FileID == fileID {
			out = append(out, g)
		}
	}
	return out
}

func (f *fixture) notesFor(userID int64) []model.Notification {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var out []model.Notification
	for _, n := range f.db.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (f *fixture) actions() []string {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := make([]string, 0, len(f.db.activity))
	for _, e := range f.db.activity {
		out = append(out, e.Action)
	}
	return out
}

// deniedBy returns the audit rows of userID whose action is a denial.
func (f *fixture) deniedBy(userID int64) []model.ActivityEntry {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var out []model.ActivityEntry
	for _, e := range f.db.activity {
		if e.UserID == userID && strings.HasSuffix(e.Action, "_DENIED") {
			out = append(out, e)
		}
	}
	return out
}

var errBoom = errors.New("boom")
