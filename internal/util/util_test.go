// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"fmt"
	"testing"
)

func TestFlattenErrsEmpty(t *testing.T) {
	if err := FlattenErrs(nil); err != nil {
		t.Errorf("FlattenErrs(nil) should be nil, got %v", err)
	}
	if err := FlattenErrs([]error{nil, nil}); err != nil {
		t.Errorf("FlattenErrs of nils should be nil, got %v", err)
	}
}

func TestMultiError(t *testing.T) {
	rawErrs := []error{
		errors.New("err1"),
		errors.New("err2"),
		errors.New("err3"),
		errors.New("err4"),
	}
	errs := FlattenErrs([]error{
		rawErrs[0],
		nil,
		rawErrs[1],
		FlattenErrs([]error{
			fmt.Errorf("wrapped: %w", rawErrs[2]),
		}),
	})
	str := "err1\nerr2\nwrapped: err3"

	if errs.Error() != str {
		t.Errorf("String representation doesn't match, expected: %s, got: %s", str, errs.Error())
	}

	for i := 0; i < 3; i++ {
		if !errors.Is(errs, rawErrs[i]) {
			t.Errorf("'%+v' should contains '%v'", errs, rawErrs[i])
		}
	}
	if errors.Is(errs, rawErrs[3]) {
		t.Errorf("'%+v' should not contains '%v'", errs, rawErrs[3])
	}
}
