package cosmos

// Config holds everything needed to reach one container of a Cosmos DB account.
type Config struct {
	Endpoint         string
	Key              string
	Database         string
	Container        string
	PartitionKeyPath string // e.g. "/category"
	Throughput       int32  // manual RU/s used when the container is created

	// InsecureSkipVerify disables TLS verification, for the local emulator's self-signed cert only.
	InsecureSkipVerify bool
	// CreateIfNotExists creates the database and container on startup when missing.
	CreateIfNotExists bool
}

// Document is a raw JSON document plus the ETag the store returned with it.
type Document struct {
	Body []byte
	ETag string
}

// QueryParam is a named parameter of a parameterized SQL query (e.g. "@category").
type QueryParam struct {
	Name  string
	Value any
}
