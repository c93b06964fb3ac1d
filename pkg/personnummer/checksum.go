package personnummer

// Checksum computes the Luhn check digit over the nine digits
// YYMMDDNNN, where DD is the day as written (coordination numbers included).
// Digits at even positions are doubled; doubled values above nine are
// reduced by nine before summing.
func Checksum(digits [9]int) int {
	sum := 0
	for i, d := range digits {
		v := d
		if i%2 == 0 {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	return (10 - sum%10) % 10
}

// checksumFor builds the digit sequence from the numeric components.
// year may be a full year; only its last two digits take part.
func checksumFor(year, month, writtenDay, serial int) int {
	yy := year % 100
	return Checksum([9]int{
		yy / 10, yy % 10,
		month / 10, month % 10,
		writtenDay / 10, writtenDay % 10,
		serial / 100, serial / 10 % 10, serial % 10,
	})
}
