package releasemanager

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// DefaultTimeout bounds a whole request to a release source
const DefaultTimeout = 30 * time.Second

func defaultHTTPClient() *http.Client {
	client := cleanhttp.DefaultClient()
	client.Timeout = DefaultTimeout
	return client
}
