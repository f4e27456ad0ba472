package scheduling

import (
	"slices"
	"testing"
)

func TestFreeSlotsOn_PartitionsRegistry(t *testing.T) {
	sys, _ := newTestSystem(t)
	mustDefineSlots(t, sys, "09:00", "10:00", "11:00")
	client := mustRegister(t, sys, "Alice")
	mustBook(t, sys, "2024-05-01", "10:00", client.ID)

	free := sys.Availability.FreeSlotsOn("2024-05-01")
	if !slices.Equal(free, []string{"09:00", "11:00"}) {
		t.Fatalf("FreeSlotsOn = %v, want [09:00 11:00]", free)
	}

	// Free and booked together cover exactly the registry.
	combined := append([]string{"10:00"}, free...)
	slices.Sort(combined)
	if !slices.Equal(combined, sys.Slots.ListSlots()) {
		t.Fatalf("free + booked = %v, registry = %v", combined, sys.Slots.ListSlots())
	}

	// A day with no bookings offers every slot.
	if got := sys.Availability.FreeSlotsOn("2024-05-02"); len(got) != 3 {
		t.Fatalf("FreeSlotsOn untouched day = %v", got)
	}
}

func TestIsDateFullyBooked(t *testing.T) {
	sys, _ := newTestSystem(t)
	mustDefineSlots(t, sys, "09:00", "10:00")
	client := mustRegister(t, sys, "Alice")

	mustBook(t, sys, "2024-05-01", "09:00", client.ID)
	if sys.Availability.IsDateFullyBooked("2024-05-01") {
		t.Fatal("one of two slots booked, day must not be fully booked")
	}
	mustBook(t, sys, "2024-05-01", "10:00", client.ID)
	if !sys.Availability.IsDateFullyBooked("2024-05-01") {
		t.Fatal("all slots booked, day must be fully booked")
	}
}

func TestIsDateFullyBooked_EmptyRegistry(t *testing.T) {
	sys, _ := newTestSystem(t)
	if sys.Availability.IsDateFullyBooked("2024-05-01") {
		t.Fatal("a day can never be fully booked with no slots defined")
	}
}

func TestDayLoad(t *testing.T) {
	sys, _ := newTestSystem(t)
	mustDefineSlots(t, sys, "09:00", "10:00", "11:00")
	client := mustRegister(t, sys, "Alice")
	mustBook(t, sys, "2024-05-01", "09:00", client.ID)
	mustBook(t, sys, "2024-05-01", "11:00", client.ID)

	booked, total := sys.Availability.DayLoad("2024-05-01")
	if booked != 2 || total != 3 {
		t.Fatalf("DayLoad = (%d, %d), want (2, 3)", booked, total)
	}
}
