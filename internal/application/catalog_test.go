package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/domain/entities"
	"igrejaconnect/internal/ports/input"
)

func newCatalogFixture(events *memEventRepo, users *memUserRepo) *CatalogService {
	svc := NewCatalogService(events, users, time.UTC)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func threeDayCatalog() *memEventRepo {
	yesterday := testEvent("ontem", fixedNow.AddDate(0, 0, -1))
	yesterday.Title = "Estudo Bíblico"
	yesterday.Category = "estudo"
	today := testEvent("hoje", time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC))
	tomorrow := testEvent("amanha", fixedNow.AddDate(0, 0, 1))
	tomorrow.Title = "Encontro de Jovens"
	tomorrow.Category = "jovens"
	tomorrow.Location = "Salão Principal"
	return newMemEventRepo(yesterday, today, tomorrow)
}

func eventIDs(events []entities.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func TestListEvents_UpcomingBucket(t *testing.T) {
	svc := newCatalogFixture(threeDayCatalog(), newMemUserRepo())

	got, err := svc.ListEvents(context.Background(), input.EventFilter{Bucket: domain.BucketUpcoming})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := eventIDs(got)
	if len(ids) != 2 || ids[0] != "hoje" || ids[1] != "amanha" {
		t.Fatalf("got %v, want [hoje amanha]", ids)
	}
}

func TestListEvents_PastBucketDescending(t *testing.T) {
	events := threeDayCatalog()
	older := testEvent("anteontem", fixedNow.AddDate(0, 0, -2))
	events.events[older.ID] = older
	svc := newCatalogFixture(events, newMemUserRepo())

	got, err := svc.ListEvents(context.Background(), input.EventFilter{Bucket: domain.BucketPast})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := eventIDs(got)
	if len(ids) != 2 || ids[0] != "ontem" || ids[1] != "anteontem" {
		t.Fatalf("got %v, want [ontem anteontem]", ids)
	}
}

func TestListEvents_AllBucketAscending(t *testing.T) {
	svc := newCatalogFixture(threeDayCatalog(), newMemUserRepo())

	got, err := svc.ListEvents(context.Background(), input.EventFilter{Bucket: domain.BucketAll})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := eventIDs(got)
	if len(ids) != 3 || ids[0] != "ontem" || ids[1] != "hoje" || ids[2] != "amanha" {
		t.Fatalf("got %v, want [ontem hoje amanha]", ids)
	}
}

func TestListEvents_SearchCaseInsensitive(t *testing.T) {
	svc := newCatalogFixture(threeDayCatalog(), newMemUserRepo())

	got, err := svc.ListEvents(context.Background(), input.EventFilter{Query: "culto"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Culto de Celebração" {
		t.Fatalf("query 'culto': got %v", eventIDs(got))
	}
}

func TestListEvents_SearchMatchesLocation(t *testing.T) {
	svc := newCatalogFixture(threeDayCatalog(), newMemUserRepo())

	got, err := svc.ListEvents(context.Background(), input.EventFilter{Query: "salão"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "amanha" {
		t.Fatalf("query 'salão': got %v", eventIDs(got))
	}
}

func TestListEvents_CategoryFilter(t *testing.T) {
	svc := newCatalogFixture(threeDayCatalog(), newMemUserRepo())

	got, err := svc.ListEvents(context.Background(), input.EventFilter{Category: "jovens"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "amanha" {
		t.Fatalf("category 'jovens': got %v", eventIDs(got))
	}
}

func TestListEvents_FiltersCombine(t *testing.T) {
	svc := newCatalogFixture(threeDayCatalog(), newMemUserRepo())

	got, err := svc.ListEvents(context.Background(), input.EventFilter{
		Query:    "estudo",
		Category: "estudo",
		Bucket:   domain.BucketUpcoming,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", eventIDs(got))
	}
}

func TestCreateEvent_RequiresAdmin(t *testing.T) {
	users := newMemUserRepo(&entities.User{ID: "u1", Role: domain.RoleMember})
	svc := newCatalogFixture(newMemEventRepo(), users)

	event := testEvent("", fixedNow.AddDate(0, 0, 7))
	if err := svc.CreateEvent(context.Background(), "u1", event); !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("got %v, want ErrNotAdmin", err)
	}
}

func TestCreateEvent_AdminWithValidCategory(t *testing.T) {
	users := newMemUserRepo(&entities.User{ID: "adm", Role: domain.RoleAdmin})
	events := newMemEventRepo()
	svc := newCatalogFixture(events, users)

	event := testEvent("", fixedNow.AddDate(0, 0, 7))
	if err := svc.CreateEvent(context.Background(), "adm", event); err != nil {
		t.Fatalf("create: %v", err)
	}
	if event.ID == "" || events.events[event.ID] == nil {
		t.Fatal("event was not stored")
	}

	bad := testEvent("", fixedNow.AddDate(0, 0, 8))
	bad.Category = "piquenique"
	if err := svc.CreateEvent(context.Background(), "adm", bad); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("got %v, want ErrInvalidCategory", err)
	}
}

func TestUpdateEvent_PartialPatch(t *testing.T) {
	users := newMemUserRepo(&entities.User{ID: "adm", Role: domain.RoleAdmin})
	events := newMemEventRepo(testEvent("e1", fixedNow.AddDate(0, 0, 7)))
	svc := newCatalogFixture(events, users)

	title := "Culto de Oração"
	got, err := svc.UpdateEvent(context.Background(), "adm", "e1", entities.EventPatch{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != title || got.Category != "culto" {
		t.Fatalf("patch leaked: title=%q category=%q", got.Title, got.Category)
	}
}
