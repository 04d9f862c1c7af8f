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

// Package pinecone implements the vecstore.Index interface against a
// Pinecone serverless index using the official Go client.
//
// The adapter performs single requests with no batching or retry of its
// own; the vecstore.Client layers that policy on top.
//
// # Usage
//
//	index, err := pinecone.NewIndex(&pinecone.Config{
//	    APIKey:    os.Getenv("PINECONE_API_KEY"),
//	    IndexName: "trademarks",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := vecstore.NewClient(index)
package pinecone
