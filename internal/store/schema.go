package store

const schema = `
CREATE TABLE IF NOT EXISTS messages (
    message_id  BIGINT PRIMARY KEY,
    contact_id  VARCHAR NOT NULL,
    is_from_me  BOOLEAN NOT NULL,
    timestamp   TIMESTAMP NOT NULL,
    text        VARCHAR NOT NULL,
    service     VARCHAR
);
CREATE INDEX IF NOT EXISTS idx_messages_contact ON messages(contact_id);
CREATE INDEX IF NOT EXISTS idx_messages_ts      ON messages(timestamp);

CREATE TABLE IF NOT EXISTS runs (
    run_id        VARCHAR PRIMARY KEY,
    generated_at  TIMESTAMP NOT NULL,
    message_count BIGINT NOT NULL,
    contact_count BIGINT NOT NULL,
    report_path   VARCHAR
);

CREATE TABLE IF NOT EXISTS derived_tables (
    run_id     VARCHAR NOT NULL,
    name       VARCHAR NOT NULL,
    payload    JSON NOT NULL,
    PRIMARY KEY (run_id, name)
);
`
