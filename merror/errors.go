// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of BROWNFREQ.
//
//  BROWNFREQ is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  BROWNFREQ is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with BROWNFREQ.  If not, see <https://www.gnu.org/licenses/>.

package merror

import (
	"encoding/json"
	"fmt"
)

// MissingDirectoryError means the configured corpus directory
// does not exist. The run then ends with zero files processed.
type MissingDirectoryError struct {
	Path string
}

func (err MissingDirectoryError) Error() string {
	return fmt.Sprintf("corpus directory %s not found", err.Path)
}

func (err MissingDirectoryError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ----------------------------

// FileReadError means a single corpus file could not be read or
// decoded. The file is skipped and the run continues.
type FileReadError struct {
	Path string
	Msg  string
}

func (err FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %s", err.Path, err.Msg)
}

func (err FileReadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ---------------------------

// TokenResolutionError means a single raw token could not be decoded
// into (word, tag) emissions. The token is skipped and the run continues.
type TokenResolutionError struct {
	Token string
	Msg   string
}

func (err TokenResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve token '%s': %s", err.Token, err.Msg)
}

func (err TokenResolutionError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// -----------------

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
