package assistant

import (
	"testing"
)

func TestDeclaredActionsFixedSet(t *testing.T) {
	actions := declaredActions()
	if len(actions) != 3 {
		t.Fatalf("expected 3 declared actions, got %d", len(actions))
	}

	names := map[string]bool{}
	for _, a := range actions {
		names[a.Name] = true
		if a.Parameters["type"] != "object" {
			t.Errorf("action %s: parameters must be an object schema", a.Name)
		}
	}
	for _, want := range []string{"get_rooms", "book_room", "send_booking_email"} {
		if !names[want] {
			t.Errorf("missing declared action %s", want)
		}
	}
}

func TestBookRoomArgsValidate(t *testing.T) {
	valid := bookRoomArgs{RoomID: 2, FullName: "Jane Doe", Email: "jane@x.com", Nights: 3}
	if err := valid.validate(); err != nil {
		t.Fatalf("valid args rejected: %v", err)
	}

	cases := []bookRoomArgs{
		{FullName: "Jane Doe", Email: "jane@x.com", Nights: 3},
		{RoomID: 2, Email: "jane@x.com", Nights: 3},
		{RoomID: 2, FullName: "Jane Doe", Nights: 3},
		{RoomID: 2, FullName: "Jane Doe", Email: "jane@x.com"},
		{RoomID: 2, FullName: "Jane Doe", Email: "jane@x.com", Nights: -1},
	}
	for i, args := range cases {
		if err := args.validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestSendBookingEmailArgsValidate(t *testing.T) {
	args := sendBookingEmailArgs{Email: "jane@x.com"}
	if err := args.validate(); err == nil {
		t.Fatal("expected error for missing booking id")
	}
	args.BookingDetails.BookingID = "bk-42"
	if err := args.validate(); err != nil {
		t.Fatalf("valid args rejected: %v", err)
	}
}
