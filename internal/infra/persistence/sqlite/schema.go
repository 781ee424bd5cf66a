package sqlite

// Schema creates the six tracker tables. Foreign keys are declared inline
// and enforced through the connection pragma; service numbers are stored as
// NULL when empty so uniqueness applies only to non-empty numbers. The DDL
// is also distributed as a docs bundle, kept in sync by a parity test.
const Schema = `
CREATE TABLE IF NOT EXISTS technicians (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS locations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	address TEXT NOT NULL DEFAULT '',
	apartment_number TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS location_details (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	address TEXT NOT NULL,
	apartment_number TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS inventory_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	unit_price REAL NOT NULL DEFAULT 0,
	stock INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS service_orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	service_number TEXT UNIQUE,
	address TEXT NOT NULL DEFAULT '',
	date_created TEXT NOT NULL,
	technician_id INTEGER REFERENCES technicians(id),
	location_id INTEGER REFERENCES locations(id)
);

CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item_id INTEGER NOT NULL REFERENCES inventory_items(id),
	technician_id INTEGER NOT NULL REFERENCES technicians(id),
	location_id INTEGER NOT NULL REFERENCES locations(id),
	service_id INTEGER REFERENCES service_orders(id),
	action_type TEXT NOT NULL CHECK (action_type IN ('Install','Remove','Repair')),
	quantity INTEGER NOT NULL,
	price REAL NOT NULL DEFAULT 0,
	timestamp TEXT NOT NULL,
	service_address TEXT NOT NULL DEFAULT '',
	service_apartment TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_transactions_timestamp ON transactions(timestamp);
CREATE INDEX IF NOT EXISTS idx_transactions_item ON transactions(item_id);
CREATE INDEX IF NOT EXISTS idx_transactions_technician ON transactions(technician_id);
CREATE INDEX IF NOT EXISTS idx_service_orders_number ON service_orders(service_number);
`
