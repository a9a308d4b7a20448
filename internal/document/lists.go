package document

import "github.com/jonathan/resume-builder/internal/types"

// Append returns a new list with entry added at the end.
func Append[T types.Entry](list []T, entry T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, entry)
}

// UpdateAt returns a new list in which only the element at index i is replaced
// by fn's result. All other elements are copied unchanged.
func UpdateAt[T types.Entry](list []T, i int, fn func(T) (T, error)) ([]T, error) {
	if i < 0 || i >= len(list) {
		return nil, &IndexError{Index: i, Len: len(list)}
	}
	updated, err := fn(list[i])
	if err != nil {
		return nil, err
	}
	out := make([]T, len(list))
	copy(out, list)
	out[i] = updated
	return out, nil
}

// RemoveAt returns a new list without the element at index i.
func RemoveAt[T types.Entry](list []T, i int) ([]T, error) {
	if i < 0 || i >= len(list) {
		return nil, &IndexError{Index: i, Len: len(list)}
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), nil
}

// IndexOf returns the position of the entry with the given id, or -1.
func IndexOf[T types.Entry](list []T, id string) int {
	for i, e := range list {
		if e.EntryID() == id {
			return i
		}
	}
	return -1
}

// IDAt translates an index coming from the UI into the id of the entry there.
func IDAt[T types.Entry](list []T, i int) (string, error) {
	if i < 0 || i >= len(list) {
		return "", &IndexError{Index: i, Len: len(list)}
	}
	return list[i].EntryID(), nil
}

// UpdateByID is UpdateAt addressed by id.
func UpdateByID[T types.Entry](list []T, id string, fn func(T) (T, error)) ([]T, error) {
	i := IndexOf(list, id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}
	return UpdateAt(list, i, fn)
}

// RemoveByID is RemoveAt addressed by id.
func RemoveByID[T types.Entry](list []T, id string) ([]T, error) {
	i := IndexOf(list, id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}
	return RemoveAt(list, i)
}
