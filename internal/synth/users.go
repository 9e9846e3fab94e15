package synth

func GenerateUsers(s *Session, n int) []User {
	users := make([]User, 0, n)
	signupFrom := s.Anchor().AddDate(-2, 0, 0)

	for id := 1; id <= n; id++ {
		users = append(users, User{
			ID:          id,
			FirstName:   s.FirstName(),
			LastName:    s.LastName(),
			Email:       s.Email(),
			PhoneNumber: s.Phone(),
			Address:     s.StreetAddress(),
			City:        s.City(),
			State:       s.StateAbbr(),
			PostalCode:  s.PostalCode(),
			Country:     "USA",
			SignupDate:  s.TimeBetween(signupFrom, s.Anchor()),
			IsActive:    s.Bool(0.75),
		})
	}
	return users
}
