package audit

// TopicProductRead is the default AUDIT_TOPIC.
const TopicProductRead = "inventory.product.read"

// ListKey partitions listing events together.
const ListKey = "products"

// Partition key = product id, supaya event 1 produk tetap urut.
func PartitionKey(key string) []byte { return []byte(key) }
