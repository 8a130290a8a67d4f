package probemap

// NextPrime returns the closest prime at or above n, walking odd candidates.
func NextPrime(n int) int {
	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}

// IsPrime reports whether n is prime, by trial division over odd factors.
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 {
		return false
	}

	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}

	return true
}
