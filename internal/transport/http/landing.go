package httptransport

import "net/http"

// landingHTML is the static informational page served at the root path.
const landingHTML = `<html>
    <head>
        <title>Health Information System</title>
        <style>
            body {
                font-family: sans-serif;
                max-width: 800px;
                margin: 0 auto;
                padding: 20px;
                line-height: 1.6;
            }
            h1 {
                color: #2c3e50;
            }
            a {
                color: #3498db;
                text-decoration: none;
            }
            a:hover {
                text-decoration: underline;
            }
        </style>
    </head>
    <body>
        <h1>Welcome to the Health Information System API</h1>
        <p>This API allows you to manage health programs and client information.</p>

        <h2>Available Endpoints:</h2>
        <ul>
            <li><strong>Authentication:</strong> POST /token</li>
            <li><strong>Programs:</strong> GET /programs/, POST /programs/</li>
            <li><strong>Clients:</strong> GET /clients/, POST /clients/, GET /clients/{id}, GET /clients/search/?query=</li>
            <li><strong>Enrollments:</strong> POST /enrollments/</li>
        </ul>
    </body>
</html>
`

func handleLanding(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(landingHTML))
}
