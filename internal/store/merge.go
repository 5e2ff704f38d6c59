// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"fmt"
)

// mergeFields overlays the top-level JSON fields of patch onto dst.
// Fields present in the patch replace the existing value wholesale
// (including arrays and nested objects); fields absent from the patch
// are left untouched. This is a strictly shallow merge — it is the
// contract that lets a partial update preserve sibling fields.
func mergeFields(dst any, patch json.RawMessage) error {
	var incoming map[string]json.RawMessage
	if err := json.Unmarshal(patch, &incoming); err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}

	base, err := json.Marshal(dst)
	if err != nil {
		return fmt.Errorf("encode existing value: %w", err)
	}

	var current map[string]json.RawMessage
	if err := json.Unmarshal(base, &current); err != nil {
		return fmt.Errorf("decode existing value: %w", err)
	}

	for k, v := range incoming {
		current[k] = v
	}

	merged, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode merged value: %w", err)
	}
	if err := json.Unmarshal(merged, dst); err != nil {
		return fmt.Errorf("apply merged value: %w", err)
	}
	return nil
}
