package domain

import "strings"

// NoteFields holds the values recovered from a booking's free-text notes.
// The backend denormalizes contact details into notes when the customer link
// is missing, using a fixed pipe-delimited grammar:
//
//	<activity name> | Customer: <name> | Email: <email> | Phone: <phone>
//
// Segments may appear in any order and any of them may be absent. A field
// not present in the notes is returned as the empty string.
type NoteFields struct {
	Activity string
	Customer string
	Email    string
	Phone    string
}

// ParseBookingNotes splits notes on "|" and classifies each segment by its
// label prefix. The first unlabelled segment is taken as the activity name.
// Labels are matched case-insensitively; whitespace around segments and
// values is trimmed. Later duplicates of a label do not overwrite earlier
// ones.
func ParseBookingNotes(notes string) NoteFields {
	var f NoteFields
	for _, seg := range strings.Split(notes, "|") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		switch {
		case hasLabel(seg, "Customer:"):
			if f.Customer == "" {
				f.Customer = labelValue(seg, "Customer:")
			}
		case hasLabel(seg, "Email:"):
			if f.Email == "" {
				f.Email = labelValue(seg, "Email:")
			}
		case hasLabel(seg, "Phone:"):
			if f.Phone == "" {
				f.Phone = labelValue(seg, "Phone:")
			}
		default:
			if f.Activity == "" {
				f.Activity = seg
			}
		}
	}
	return f
}

func hasLabel(seg, label string) bool {
	return len(seg) >= len(label) && strings.EqualFold(seg[:len(label)], label)
}

func labelValue(seg, label string) string {
	return strings.TrimSpace(seg[len(label):])
}
