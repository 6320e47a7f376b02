package utils // package utils provides small helpers shared across handlers

import "crypto/rand"

// bookingNumberAlphabet is the set of characters a booking number is
// drawn from: uppercase letters and digits.
const bookingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// BookingNumberLength is the fixed length of a generated booking number.
const BookingNumberLength = 8

// NewBookingNumber returns a fresh 8-character uppercase-alphanumeric
// purchase token generated from crypto/rand. Tokens are not checked
// against existing bookings: a collision between unrelated purchases is
// possible but harmless, because the bookings primary key includes the
// match and seat ids and the caller's seats are inserted atomically.
func NewBookingNumber() (string, error) {
	buf := make([]byte, BookingNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = bookingNumberAlphabet[int(b)%len(bookingNumberAlphabet)]
	}
	return string(buf), nil
}
