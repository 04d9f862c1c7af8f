// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"fmt"
	"time"
)

// ValidateTrademark validates a Trademark according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Name must not be empty
//   - DocumentId must not be empty
//   - UploadedAt must not be in the future
//
// NOT validated (legitimately empty on fallback extraction paths):
//   - ApplicationNumber, Class, Applicant, Description
func ValidateTrademark(record *Trademark) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidTrademark)
	}

	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTrademark, ErrEmptyId)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTrademark, ErrEmptyName)
	}

	if record.DocumentId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTrademark, ErrEmptyDocumentId)
	}

	if !IsValidTimestamp(record.UploadedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidTrademark, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
