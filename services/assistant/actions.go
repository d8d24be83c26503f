package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bot9palace/models"
	"bot9palace/services/hotel"
)

// The fixed action set. Anything else coming back from the model is a
// programming fault, not a user-facing condition.
const (
	actionGetRooms         = "get_rooms"
	actionBookRoom         = "book_room"
	actionSendBookingEmail = "send_booking_email"
)

func declaredActions() []ActionDecl {
	return []ActionDecl{
		{
			Name:        actionGetRooms,
			Description: "Get available hotel rooms",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        actionBookRoom,
			Description: "Book a hotel room",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"roomId":   map[string]any{"type": "integer"},
					"fullName": map[string]any{"type": "string"},
					"email":    map[string]any{"type": "string"},
					"nights":   map[string]any{"type": "integer"},
				},
				"required": []string{"roomId", "fullName", "email", "nights"},
			},
		},
		{
			Name:        actionSendBookingEmail,
			Description: "Send booking confirmation email",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"email": map[string]any{"type": "string"},
					"bookingDetails": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"room":      map[string]any{"type": "string"},
							"price":     map[string]any{"type": "number"},
							"nights":    map[string]any{"type": "number"},
							"total":     map[string]any{"type": "number"},
							"bookingId": map[string]any{"type": "string"},
						},
					},
				},
				"required": []string{"email", "bookingDetails"},
			},
		},
	}
}

type bookRoomArgs struct {
	RoomID   int    `json:"roomId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Nights   int    `json:"nights"`
}

func (a bookRoomArgs) validate() error {
	if a.RoomID <= 0 {
		return fmt.Errorf("roomId must be a positive integer")
	}
	if a.FullName == "" {
		return fmt.Errorf("fullName is required")
	}
	if a.Email == "" {
		return fmt.Errorf("email is required")
	}
	if a.Nights <= 0 {
		return fmt.Errorf("nights must be a positive integer")
	}
	return nil
}

type sendBookingEmailArgs struct {
	Email          string                `json:"email"`
	BookingDetails models.BookingDetails `json:"bookingDetails"`
}

func (a sendBookingEmailArgs) validate() error {
	if a.Email == "" {
		return fmt.Errorf("email is required")
	}
	if a.BookingDetails.BookingID == "" {
		return fmt.Errorf("bookingDetails.bookingId is required")
	}
	return nil
}

// dispatch routes one action request to the backend operation it names.
// Domain outcomes (an unavailable room, a failed mail) come back as action
// results for the model to phrase; only backend faults and malformed
// arguments return errors.
func (s *DefaultAssistantService) dispatch(ctx context.Context, req *ActionRequest) (any, error) {
	switch req.Name {
	case actionGetRooms:
		rooms, err := s.Hotel.ListAvailableRooms(ctx)
		if err != nil {
			return nil, err
		}
		return rooms, nil

	case actionBookRoom:
		var args bookRoomArgs
		if err := json.Unmarshal([]byte(req.Arguments), &args); err != nil {
			return nil, &MalformedArgumentsError{Action: req.Name, Err: err}
		}
		if err := args.validate(); err != nil {
			return nil, &MalformedArgumentsError{Action: req.Name, Err: err}
		}

		details, err := s.Hotel.ReserveRoom(ctx, args.RoomID, args.FullName, args.Email, args.Nights)
		var unavailable *hotel.UnavailableError
		if errors.As(err, &unavailable) {
			return map[string]any{
				"success": false,
				"message": unavailable.Error(),
			}, nil
		}
		if err != nil {
			return nil, err
		}
		return details, nil

	case actionSendBookingEmail:
		var args sendBookingEmailArgs
		if err := json.Unmarshal([]byte(req.Arguments), &args); err != nil {
			return nil, &MalformedArgumentsError{Action: req.Name, Err: err}
		}
		if err := args.validate(); err != nil {
			return nil, &MalformedArgumentsError{Action: req.Name, Err: err}
		}
		return s.Mailer.NotifyBooking(ctx, args.Email, args.BookingDetails), nil

	default:
		return nil, &UnknownActionError{Action: req.Name}
	}
}
