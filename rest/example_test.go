package rest_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/adamwoolhether/palworld/rest"
)

func ExampleURL() {
	u := rest.URL("http", "127.0.0.1", "/v1/api/info",
		rest.WithPort(8212),
	)

	fmt.Println(u.String())
	// Output: http://127.0.0.1:8212/v1/api/info
}

func ExampleRequest() {
	type payload struct {
		Message string `json:"message"`
	}

	u := rest.URL("http", "127.0.0.1", "/v1/api/announce", rest.WithPort(8212))

	req, err := rest.Request(context.Background(), u, http.MethodPost,
		rest.WithPayload(payload{Message: "server restart in 5 minutes"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(req.Method, req.URL.Path)
	// Output: POST /v1/api/announce
}

func ExampleClient_Do() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer ts.Close()

	c, _ := rest.Build(rest.WithBasicAuth("admin", "hunter2"))
	defer c.Close()

	u, _ := url.Parse(ts.URL)
	req, _ := rest.Request(context.Background(), u, http.MethodGet)

	var resp struct {
		Status string `json:"status"`
	}
	if err := c.Do(req, http.StatusOK, rest.WithDestination(&resp)); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(resp.Status)
	// Output: ok
}
