// Copyright 2026 The Marl Authors
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

package runtime

import "sync"

// index maps conversions from label names to internal codes.
//
// All evaluations belonging to the same Runtime share this index.
type index struct {
	mu       sync.RWMutex
	labelMap map[string]int64
	labels   []string
}

func newIndex() *index {
	return &index{labelMap: map[string]int64{}}
}

func (x *index) StringToIndex(s string) int64 {
	x.mu.RLock()
	i, ok := x.labelMap[s]
	x.mu.RUnlock()
	if ok {
		return i
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if i, ok := x.labelMap[s]; ok {
		return i
	}
	i = int64(len(x.labels))
	x.labels = append(x.labels, s)
	x.labelMap[s] = i
	return i
}

func (x *index) IndexToString(i int64) string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.labels[i]
}
