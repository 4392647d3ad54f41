package utility

// Contains kiểm tra một phần tử có trong slice hay không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// Map áp dụng hàm f lên từng phần tử của slice và trả về slice kết quả
func Map[T any, R any](slice []T, f func(T) R) []R {
	result := make([]R, 0, len(slice))
	for _, v := range slice {
		result = append(result, f(v))
	}
	return result
}
