package partner

// isValidID отклоняет только пустой идентификатор, пробелы считаются значимыми.
func isValidID(id string) bool {
	return id != ""
}
