/*
Copyright 2026 the PetFriends API Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fake

import (
	"time"

	"github.com/spf13/pflag"
)

// Options configure a standalone fake service.
type Options struct {
	ListenAddress   string
	Email           string
	Password        string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen", ":8080", "Address to serve the fake API on")
	f.StringVar(&o.Email, "email", "tester@petfriends.test", "Email of the account allowed to authenticate")
	f.StringVar(&o.Password, "password", "correct-horse-battery-staple", "Password of the account allowed to authenticate")
	f.DurationVar(&o.ReadTimeout, "read-timeout", 30*time.Second, "Maximum duration for reading a request")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 5*time.Second, "Grace period for in-flight requests on shutdown")
}
