package seeds

func SeedAll() error {
	if err := SeedAdmin(); err != nil {
		return err
	}
	if err := SeedPins(); err != nil {
		return err
	}
	return nil
}
