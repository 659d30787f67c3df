/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynamics/errors"
	"github.com/suparena/dynamics/hydrate"
)

// ItemMap converts a DynamoDB item into plain Go values: strings, float64
// numbers, bools, []any lists and map[string]any maps.
func ItemMap(item map[string]types.AttributeValue) (map[string]any, error) {
	out := make(map[string]any, len(item))
	if err := attributevalue.UnmarshalMap(item, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return out, nil
}

// HydrateItem fills target from a DynamoDB item, resolving field aliases the
// same way as for any other input map.
func HydrateItem(h *hydrate.Hydrator, target any, item map[string]types.AttributeValue) error {
	input, err := ItemMap(item)
	if err != nil {
		return err
	}
	return h.Hydrate(target, input)
}

// ParseKey builds a primary key from "name=value" pairs. A pair written as
// "name:N=value" produces a number attribute; everything else is a string.
func ParseKey(pairs []string) (map[string]types.AttributeValue, error) {
	if len(pairs) == 0 {
		return nil, errors.NewValidationError("key", "at least one key attribute is required")
	}

	key := make(map[string]types.AttributeValue, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, errors.NewValidationError("key", fmt.Sprintf("malformed key attribute %q, expected name=value", pair))
		}
		if n, ok := strings.CutSuffix(name, ":N"); ok {
			key[n] = &types.AttributeValueMemberN{Value: value}
			continue
		}
		key[strings.TrimSuffix(name, ":S")] = &types.AttributeValueMemberS{Value: value}
	}
	return key, nil
}

// FormatKey renders a key as sorted name=value pairs, for errors and logs.
func FormatKey(key map[string]types.AttributeValue) string {
	names := make([]string, 0, len(key))
	for name := range key {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		switch v := key[name].(type) {
		case *types.AttributeValueMemberS:
			parts = append(parts, name+"="+v.Value)
		case *types.AttributeValueMemberN:
			parts = append(parts, name+"="+v.Value)
		default:
			parts = append(parts, name+"=?")
		}
	}
	return strings.Join(parts, ",")
}
