package catalog

// builtinEntries returns the technology entries the catalog ships with.
// Curated toward the stacks the recommendation service sees most: web
// frameworks, datastores, messaging, and the big-three cloud storage and
// compute services.
func builtinEntries() []*Entry {
	return []*Entry{
		// Web frameworks
		{
			CanonicalName: "FastAPI",
			Ecosystem:     EcosystemOpenSource,
			License:       "MIT",
			Maturity:      MaturityStable,
			Category:      "web_framework",
			Aliases:       []string{"fast-api", "fastapi framework"},
			Alternatives:  []string{"Flask", "Django"},
		},
		{
			CanonicalName: "Django",
			Ecosystem:     EcosystemOpenSource,
			License:       "BSD-3-Clause",
			Maturity:      MaturityMature,
			Category:      "web_framework",
			Alternatives:  []string{"FastAPI", "Flask"},
		},
		{
			CanonicalName: "Flask",
			Ecosystem:     EcosystemOpenSource,
			License:       "BSD-3-Clause",
			Maturity:      MaturityMature,
			Category:      "web_framework",
			Alternatives:  []string{"FastAPI", "Django"},
		},
		{
			CanonicalName: "Express",
			Ecosystem:     EcosystemOpenSource,
			License:       "MIT",
			Maturity:      MaturityMature,
			Category:      "web_framework",
			Aliases:       []string{"express.js", "expressjs"},
			Alternatives:  []string{"Fastify", "Koa"},
		},
		{
			CanonicalName: "React",
			Ecosystem:     EcosystemOpenSource,
			License:       "MIT",
			Maturity:      MaturityMature,
			Category:      "frontend_framework",
			Aliases:       []string{"react.js", "reactjs"},
			Alternatives:  []string{"Vue.js", "Angular"},
		},
		{
			CanonicalName: "Vue.js",
			Ecosystem:     EcosystemOpenSource,
			License:       "MIT",
			Maturity:      MaturityMature,
			Category:      "frontend_framework",
			Aliases:       []string{"vue", "vuejs"},
			Alternatives:  []string{"React", "Angular"},
		},

		// Databases
		{
			CanonicalName: "PostgreSQL",
			Ecosystem:     EcosystemOpenSource,
			License:       "PostgreSQL",
			Maturity:      MaturityMature,
			Category:      "database",
			Aliases:       []string{"postgres", "psql"},
			Alternatives:  []string{"MySQL", "MariaDB"},
		},
		{
			CanonicalName: "MySQL",
			Ecosystem:     EcosystemOpenSource,
			License:       "GPL-2.0",
			Maturity:      MaturityMature,
			Category:      "database",
			Alternatives:  []string{"PostgreSQL", "MariaDB"},
		},
		{
			CanonicalName: "MariaDB",
			Ecosystem:     EcosystemOpenSource,
			License:       "GPL-2.0",
			Maturity:      MaturityMature,
			Category:      "database",
			Alternatives:  []string{"MySQL", "PostgreSQL"},
		},
		{
			CanonicalName: "MongoDB",
			Ecosystem:     EcosystemOpenSource,
			License:       "SSPL-1.0",
			Maturity:      MaturityMature,
			Category:      "document_database",
			Aliases:       []string{"mongo"},
			Alternatives:  []string{"CouchDB", "Amazon DynamoDB"},
		},
		{
			CanonicalName: "Redis",
			Ecosystem:     EcosystemOpenSource,
			License:       "RSALv2",
			Maturity:      MaturityMature,
			Category:      "cache",
			Alternatives:  []string{"Memcached", "Valkey"},
		},
		{
			CanonicalName: "Elasticsearch",
			Ecosystem:     EcosystemOpenSource,
			License:       "Elastic-2.0",
			Maturity:      MaturityMature,
			Category:      "search_engine",
			Aliases:       []string{"elastic search"},
			Alternatives:  []string{"OpenSearch", "Meilisearch"},
		},

		// Messaging
		{
			CanonicalName: "Apache Kafka",
			Ecosystem:     EcosystemOpenSource,
			License:       "Apache-2.0",
			Maturity:      MaturityMature,
			Category:      "message_broker",
			Aliases:       []string{"kafka"},
			Alternatives:  []string{"RabbitMQ", "NATS"},
		},
		{
			CanonicalName: "RabbitMQ",
			Ecosystem:     EcosystemOpenSource,
			License:       "MPL-2.0",
			Maturity:      MaturityMature,
			Category:      "message_broker",
			Alternatives:  []string{"Apache Kafka", "NATS"},
		},

		// Infrastructure
		{
			CanonicalName: "Docker",
			Ecosystem:     EcosystemOpenSource,
			License:       "Apache-2.0",
			Maturity:      MaturityMature,
			Category:      "containerization",
			Alternatives:  []string{"Podman", "containerd"},
		},
		{
			CanonicalName: "Kubernetes",
			Ecosystem:     EcosystemOpenSource,
			License:       "Apache-2.0",
			Maturity:      MaturityMature,
			Category:      "orchestration",
			Aliases:       []string{"k8s"},
			Alternatives:  []string{"Docker Swarm", "Nomad"},
		},
		{
			CanonicalName: "Nginx",
			Ecosystem:     EcosystemOpenSource,
			License:       "BSD-2-Clause",
			Maturity:      MaturityMature,
			Category:      "web_server",
			Alternatives:  []string{"Caddy", "HAProxy"},
		},

		// AWS
		{
			CanonicalName: "AWS S3",
			Ecosystem:     EcosystemAWS,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "object_storage",
			Aliases:       []string{"s3", "amazon s3", "simple storage service"},
			Alternatives:  []string{"MinIO", "Google Cloud Storage", "Azure Blob Storage"},
		},
		{
			CanonicalName: "AWS Lambda",
			Ecosystem:     EcosystemAWS,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "serverless_compute",
			Aliases:       []string{"lambda"},
			Alternatives:  []string{"Azure Functions", "Google Cloud Functions"},
		},
		{
			CanonicalName: "Amazon DynamoDB",
			Ecosystem:     EcosystemAWS,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "document_database",
			Aliases:       []string{"dynamodb", "dynamo"},
			Alternatives:  []string{"MongoDB", "Azure Cosmos DB"},
		},
		{
			CanonicalName: "Amazon RDS",
			Ecosystem:     EcosystemAWS,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "managed_database",
			Aliases:       []string{"rds"},
			Alternatives:  []string{"PostgreSQL", "Azure SQL Database"},
		},

		// Azure
		{
			CanonicalName: "Azure Blob Storage",
			Ecosystem:     EcosystemAzure,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "object_storage",
			Aliases:       []string{"blob storage", "azure blob"},
			Alternatives:  []string{"AWS S3", "Google Cloud Storage", "MinIO"},
		},
		{
			CanonicalName: "Azure Functions",
			Ecosystem:     EcosystemAzure,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "serverless_compute",
			Alternatives:  []string{"AWS Lambda", "Google Cloud Functions"},
		},
		{
			CanonicalName: "Azure Cosmos DB",
			Ecosystem:     EcosystemAzure,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "document_database",
			Aliases:       []string{"cosmos db", "cosmosdb"},
			Alternatives:  []string{"MongoDB", "Amazon DynamoDB"},
		},

		// GCP
		{
			CanonicalName: "Google Cloud Storage",
			Ecosystem:     EcosystemGCP,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "object_storage",
			Aliases:       []string{"gcs"},
			Alternatives:  []string{"AWS S3", "Azure Blob Storage", "MinIO"},
		},
		{
			CanonicalName: "Google Cloud Functions",
			Ecosystem:     EcosystemGCP,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "serverless_compute",
			Alternatives:  []string{"AWS Lambda", "Azure Functions"},
		},
		{
			CanonicalName: "Google BigQuery",
			Ecosystem:     EcosystemGCP,
			License:       "Proprietary",
			Maturity:      MaturityMature,
			Category:      "data_warehouse",
			Aliases:       []string{"bigquery"},
			Alternatives:  []string{"Snowflake", "Amazon Redshift"},
		},

		// Storage-compatible open source
		{
			CanonicalName: "MinIO",
			Ecosystem:     EcosystemOpenSource,
			License:       "AGPL-3.0",
			Maturity:      MaturityStable,
			Category:      "object_storage",
			Alternatives:  []string{"AWS S3", "Google Cloud Storage"},
		},

		// Observability
		{
			CanonicalName: "Prometheus",
			Ecosystem:     EcosystemOpenSource,
			License:       "Apache-2.0",
			Maturity:      MaturityMature,
			Category:      "monitoring",
			Alternatives:  []string{"VictoriaMetrics", "Grafana Mimir"},
		},
		{
			CanonicalName: "Grafana",
			Ecosystem:     EcosystemOpenSource,
			License:       "AGPL-3.0",
			Maturity:      MaturityMature,
			Category:      "monitoring",
			Alternatives:  []string{"Kibana"},
		},
	}
}
